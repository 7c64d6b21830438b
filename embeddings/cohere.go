package embeddings

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"articlesearch/pinecone"
)

// cohereDimension is the output dimensionality of the embed-english-v3.0
// model family, matching the index dimension used throughout.
const cohereDimension = 1024

// CohereProvider implements Provider using the Cohere Embed API (v2).
// Docs: https://docs.cohere.com/reference/embed
type CohereProvider struct {
	client *cohereclient.Client
	model  string
}

// NewCohereProvider builds a Cohere-backed embeddings provider.
func NewCohereProvider(apiKey, model string) *CohereProvider {
	if model == "" {
		model = "embed-english-v3.0"
	}
	// Force HTTP/1.1 to avoid intermittent HTTP/2 protocol errors against
	// the Cohere endpoint.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereProvider{client: client, model: model}
}

func (c *CohereProvider) ModelName() string { return c.model }

func (c *CohereProvider) Dimension() int { return cohereDimension }

func (c *CohereProvider) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	cohereType := cohere.EmbedInputTypeSearchDocument
	if inputType == pinecone.InputTypeQuery {
		cohereType = cohere.EmbedInputTypeSearchQuery
	}

	resp, err := c.client.V2.Embed(
		ctx,
		&cohere.V2EmbedRequest{
			Texts:          texts,
			Model:          c.model,
			InputType:      cohereType,
			EmbeddingTypes: []cohere.EmbeddingType{cohere.EmbeddingTypeFloat},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cohere embed error: %w", err)
	}
	if resp == nil || resp.Embeddings == nil || resp.Embeddings.Float == nil {
		return nil, errors.New("cohere embed returned no float embeddings")
	}

	floats := resp.Embeddings.Float
	if len(floats) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}

	out := make([][]float32, len(floats))
	for i, vec := range floats {
		fv := make([]float32, len(vec))
		for j, v := range vec {
			fv[j] = float32(v)
		}
		out[i] = fv
	}
	return out, nil
}
