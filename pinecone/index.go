package pinecone

import (
	"context"
	"fmt"
	"net/http"
)

// Vector is the persisted unit in an index: one vector with its id and the
// flattened metadata needed to render a result without a second fetch.
type Vector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Match is a single nearest-neighbor hit returned by Query.
type Match struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Index is a data-plane handle bound to one index host.
type Index struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Upsert writes vectors by id; an existing id is fully replaced.
func (ix *Index) Upsert(ctx context.Context, vectors []Vector) error {
	if len(vectors) == 0 {
		return nil
	}
	payload := map[string]interface{}{"vectors": vectors}
	if err := ix.do(ctx, "/vectors/upsert", payload, nil); err != nil {
		return fmt.Errorf("failed to upsert vectors: %w", err)
	}
	return nil
}

// Query returns the topK nearest neighbors of the given vector by cosine
// similarity, with metadata when includeMetadata is set. Matches arrive
// sorted by descending score.
func (ix *Index) Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]Match, error) {
	payload := map[string]interface{}{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": includeMetadata,
	}
	var out struct {
		Matches []Match `json:"matches"`
	}
	if err := ix.do(ctx, "/query", payload, &out); err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	return out.Matches, nil
}

// DeleteAll removes every vector in the index's default namespace.
func (ix *Index) DeleteAll(ctx context.Context) error {
	payload := map[string]interface{}{"deleteAll": true}
	if err := ix.do(ctx, "/vectors/delete", payload, nil); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	return nil
}

func (ix *Index) do(ctx context.Context, path string, payload, out interface{}) error {
	return doJSON(ctx, ix.httpClient, ix.apiKey, http.MethodPost, ix.baseURL+path, payload, out)
}
