package search

import (
	"context"

	"articlesearch/config"
	"articlesearch/embeddings"
	"articlesearch/pinecone"
	"articlesearch/types"
)

// Engine answers free-text queries with a ranked result list. Both the
// vector-backed and the lexical fallback engines satisfy it, so consumers
// never branch on which one is active.
type Engine interface {
	Search(ctx context.Context, query string, limit int) ([]types.SearchResult, error)
}

// NewEngineFromConfig selects the relevance engine once at construction time:
// demo mode yields the lexical fallback over the built-in corpus; a
// configured vector backend yields the vector engine, with the index host
// resolved lazily on first search; neither yields nil, which the API layer
// reports as "not configured".
func NewEngineFromConfig(cfg *config.Config) Engine {
	if cfg.DemoMode {
		return NewLexicalEngine(DemoCorpus())
	}
	if !cfg.VectorConfigured() {
		return nil
	}

	client := pinecone.NewClient(cfg.PineconeAPIKey)
	provider := embeddings.NewProvider(cfg, client)
	return NewVectorEngine(provider, newLazyIndex(client, cfg.PineconeIndex))
}
