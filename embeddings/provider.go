package embeddings

import (
	"context"

	"articlesearch/config"
	"articlesearch/pinecone"
)

// Provider abstracts a text->embedding generator. Implementations return one
// vector per input text, all of Dimension length. inputType distinguishes
// stored passages from search queries for models that embed asymmetrically.
type Provider interface {
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
	ModelName() string
	Dimension() int
}

// NewProvider selects an embeddings provider from configuration. Cohere is
// preferred when its key is set, so a Cohere-embedded corpus can live in a
// Pinecone index; otherwise the Pinecone-hosted model is used. Returns nil
// when neither is configured.
func NewProvider(cfg *config.Config, pc *pinecone.Client) Provider {
	if cfg.CohereAPIKey != "" {
		return NewCohereProvider(cfg.CohereAPIKey, "")
	}
	if cfg.VectorConfigured() && pc != nil {
		return NewPineconeProvider(pc, cfg.EmbedModel)
	}
	return nil
}

// PineconeProvider embeds text with a Pinecone-hosted model.
type PineconeProvider struct {
	client *pinecone.Client
	model  string
}

// NewPineconeProvider wraps a Pinecone client's inference API.
func NewPineconeProvider(client *pinecone.Client, model string) *PineconeProvider {
	if model == "" {
		model = config.EmbeddingModel
	}
	return &PineconeProvider{client: client, model: model}
}

func (p *PineconeProvider) ModelName() string { return p.model }

func (p *PineconeProvider) Dimension() int { return config.EmbeddingDimension }

func (p *PineconeProvider) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	return p.client.Embed(ctx, p.model, texts, inputType)
}
