package indexer

import (
	"bytes"
	"context"
	"encoding/json"

	"articlesearch/common"
	"articlesearch/types"
)

// S3Archiver writes a JSON snapshot of each indexed article to S3, so an
// indexing run leaves an inspectable record of exactly what was embedded.
type S3Archiver struct {
	client *common.S3
	bucket string
	prefix string
}

// NewS3Archiver builds an archiver targeting bucket with an optional key
// prefix (already normalized to end with "/").
func NewS3Archiver(client *common.S3, bucket, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Archive uploads the article as pretty-printed JSON under
// <prefix>articles/<id>.json.
func (a *S3Archiver) Archive(ctx context.Context, article types.Article) error {
	b, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return err
	}

	key := a.prefix + "articles/" + article.ID + ".json"
	return a.client.Put(ctx, a.bucket, key, bytes.NewReader(b), "application/json", "public, max-age=300")
}
