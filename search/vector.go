package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"articlesearch/embeddings"
	"articlesearch/pinecone"
	"articlesearch/types"
)

// VectorIndex is the slice of index functionality the vector engine needs.
// *pinecone.Index satisfies it; tests substitute a fake.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]pinecone.Match, error)
}

// VectorEngine answers queries by embedding the query text and running a
// nearest-neighbor search against the stored article vectors. The provider's
// ordering is authoritative; no local re-ranking happens here.
type VectorEngine struct {
	provider embeddings.Provider
	index    VectorIndex
}

// NewVectorEngine builds the vector-backed relevance engine.
func NewVectorEngine(provider embeddings.Provider, index VectorIndex) *VectorEngine {
	return &VectorEngine{provider: provider, index: index}
}

// Search embeds the query and maps the index matches to SearchResults,
// reconstructing article metadata from each match.
func (e *VectorEngine) Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error) {
	if e.provider == nil {
		return nil, errors.New("no embeddings provider configured")
	}

	vectors, err := e.provider.Embed(ctx, []string{query}, pinecone.InputTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, errors.New("embedding provider returned no vector for query")
	}

	matches, err := e.index.Query(ctx, vectors[0], limit, true)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]types.SearchResult, len(matches))
	for i, m := range matches {
		results[i] = types.SearchResult{
			ID:      m.ID,
			Score:   m.Score,
			Article: types.ArticleFromMetadata(m.ID, m.Metadata),
		}
	}
	return results, nil
}

// lazyIndex resolves the index host on first use, so a control-plane outage
// at startup surfaces as per-request search errors instead of preventing the
// server from booting. The resolved handle is cached.
type lazyIndex struct {
	client *pinecone.Client
	name   string

	mu    sync.Mutex
	index *pinecone.Index
}

func newLazyIndex(client *pinecone.Client, name string) *lazyIndex {
	return &lazyIndex{client: client, name: name}
}

func (l *lazyIndex) Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]pinecone.Match, error) {
	idx, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Query(ctx, vector, topK, includeMetadata)
}

func (l *lazyIndex) resolve(ctx context.Context) (*pinecone.Index, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index != nil {
		return l.index, nil
	}

	desc, err := l.client.DescribeIndex(ctx, l.name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve host for index %s: %w", l.name, err)
	}
	l.index = l.client.Index(desc.Host)
	return l.index, nil
}
