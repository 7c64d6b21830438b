package indexer

import (
	"context"
	"fmt"
	"log"
	"time"

	"articlesearch/config"
	"articlesearch/embeddings"
	"articlesearch/pinecone"
	"articlesearch/types"
)

// ControlPlane is the slice of index administration the indexer needs.
// *pinecone.Client satisfies it; tests substitute a fake.
type ControlPlane interface {
	DescribeIndex(ctx context.Context, name string) (*pinecone.IndexDescription, error)
	CreateIndex(ctx context.Context, name string, dimension int) error
}

// IndexStore is the data-plane functionality the indexer needs.
// *pinecone.Index satisfies it.
type IndexStore interface {
	Upsert(ctx context.Context, vectors []pinecone.Vector) error
	DeleteAll(ctx context.Context) error
}

// Archiver persists a copy of each indexed article; nil disables archiving.
type Archiver interface {
	Archive(ctx context.Context, article types.Article) error
}

// Summary reports a completed indexing run.
type Summary struct {
	Count int `json:"count"`
}

// step names the phase of the run for failure attribution in logs/errors.
type step string

const (
	stepClearing  step = "clearing index"
	stepEnsuring  step = "ensuring index exists"
	stepUpserting step = "embedding and upserting"
)

// Indexer embeds articles and writes them to the vector store. A run is not
// transactional: a failure partway leaves whatever state was reached, and
// re-running is the recovery mechanism since upserts are idempotent by id.
type Indexer struct {
	control  ControlPlane
	provider embeddings.Provider
	indexFor func(host string) IndexStore
	archiver Archiver

	indexName    string
	upsertDelay  time.Duration
	pollInterval time.Duration
	maxPolls     int
}

// New wires an indexer to a real Pinecone client.
func New(client *pinecone.Client, provider embeddings.Provider, cfg *config.Config) *Indexer {
	return &Indexer{
		control:      client,
		provider:     provider,
		indexFor:     func(host string) IndexStore { return client.Index(host) },
		indexName:    cfg.PineconeIndex,
		upsertDelay:  config.UpsertDelay,
		pollInterval: config.IndexReadyPollInterval,
		maxPolls:     config.IndexReadyMaxPolls,
	}
}

// WithArchiver attaches an archive destination for indexed articles.
func (ix *Indexer) WithArchiver(a Archiver) *Indexer {
	ix.archiver = a
	return ix
}

// Run indexes the given articles in order. resetFirst clears the index
// before writing. Any embedding or upsert failure aborts the whole run.
func (ix *Indexer) Run(ctx context.Context, articles []types.Article, resetFirst bool) (*Summary, error) {
	if resetFirst {
		if err := ix.clearIndex(ctx); err != nil {
			return nil, stepErr(stepClearing, err)
		}
	}

	host, err := ix.ensureIndex(ctx)
	if err != nil {
		return nil, stepErr(stepEnsuring, err)
	}
	store := ix.indexFor(host)

	for i, article := range articles {
		log.Printf("[%d/%d] Indexing: %s", i+1, len(articles), article.Title)

		if err := ix.indexOne(ctx, store, article); err != nil {
			return nil, stepErr(stepUpserting, fmt.Errorf("article %s: %w", article.ID, err))
		}

		if ix.archiver != nil {
			if err := ix.archiver.Archive(ctx, article); err != nil {
				log.Printf("Warning: failed to archive article %s: %v", article.ID, err)
			}
		}

		// Fixed pause between upserts to respect provider rate limits.
		if ix.upsertDelay > 0 && i < len(articles)-1 {
			time.Sleep(ix.upsertDelay)
		}
	}

	log.Printf("Indexed %d article(s) into %s", len(articles), ix.indexName)
	return &Summary{Count: len(articles)}, nil
}

// clearIndex removes all stored vectors. A missing index, or a clear that
// fails because there is nothing to clear, is not an error.
func (ix *Indexer) clearIndex(ctx context.Context) error {
	desc, err := ix.control.DescribeIndex(ctx, ix.indexName)
	if err != nil {
		if pinecone.IsNotFound(err) {
			log.Printf("Index %s does not exist yet; nothing to clear", ix.indexName)
			return nil
		}
		return err
	}

	if err := ix.indexFor(desc.Host).DeleteAll(ctx); err != nil {
		if pinecone.IsNotFound(err) {
			log.Printf("Index %s already empty", ix.indexName)
			return nil
		}
		return err
	}

	log.Printf("Cleared index %s", ix.indexName)
	return nil
}

// ensureIndex creates the index if absent and waits, bounded, for it to
// report ready. Returns the index host.
func (ix *Indexer) ensureIndex(ctx context.Context) (string, error) {
	desc, err := ix.control.DescribeIndex(ctx, ix.indexName)
	if err == nil {
		return desc.Host, nil
	}
	if !pinecone.IsNotFound(err) {
		return "", err
	}

	log.Printf("Creating index %s (dimension %d, cosine)", ix.indexName, ix.provider.Dimension())
	if err := ix.control.CreateIndex(ctx, ix.indexName, ix.provider.Dimension()); err != nil {
		return "", err
	}

	// The provider exposes no tighter readiness signal than polling.
	for attempt := 0; attempt < ix.maxPolls; attempt++ {
		time.Sleep(ix.pollInterval)
		desc, err := ix.control.DescribeIndex(ctx, ix.indexName)
		if err != nil {
			continue
		}
		if desc.Status.Ready {
			return desc.Host, nil
		}
	}
	return "", fmt.Errorf("index %s not ready after %d checks", ix.indexName, ix.maxPolls)
}

// indexOne embeds a single article and upserts its vector with metadata.
func (ix *Indexer) indexOne(ctx context.Context, store IndexStore, article types.Article) error {
	input := buildEmbeddingInput(article)

	vectors, err := ix.provider.Embed(ctx, []string{input}, pinecone.InputTypePassage)
	if err != nil {
		return fmt.Errorf("failed to embed: %w", err)
	}
	if len(vectors) == 0 {
		return fmt.Errorf("embeddings provider returned no vector")
	}

	return store.Upsert(ctx, []pinecone.Vector{{
		ID:       article.ID,
		Values:   vectors[0],
		Metadata: types.FlattenMetadata(article, config.MaxMetadataSummaryChars),
	}})
}

func stepErr(s step, err error) error {
	return fmt.Errorf("%s: %w", s, err)
}
