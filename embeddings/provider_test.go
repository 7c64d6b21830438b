package embeddings

import (
	"testing"

	"articlesearch/config"
	"articlesearch/pinecone"
)

func TestNewProviderSelection(t *testing.T) {
	pc := pinecone.NewClient("pinecone-key")

	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{
			name: "cohere preferred when its key is set",
			cfg:  &config.Config{PineconeAPIKey: "pk", CohereAPIKey: "ck"},
			want: "embed-english-v3.0",
		},
		{
			name: "cohere without a pinecone key",
			cfg:  &config.Config{CohereAPIKey: "ck"},
			want: "embed-english-v3.0",
		},
		{
			name: "pinecone hosted model otherwise",
			cfg:  &config.Config{PineconeAPIKey: "pk", EmbedModel: "llama-text-embed-v2"},
			want: "llama-text-embed-v2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.cfg, pc)
			if p == nil {
				t.Fatal("provider = nil")
			}
			if p.ModelName() != tt.want {
				t.Errorf("model = %q; want %q", p.ModelName(), tt.want)
			}
		})
	}
}

func TestNewProviderCohereType(t *testing.T) {
	p := NewProvider(&config.Config{PineconeAPIKey: "pk", CohereAPIKey: "ck"}, pinecone.NewClient("pk"))
	if _, ok := p.(*CohereProvider); !ok {
		t.Fatalf("provider = %T; want *CohereProvider when both keys are set", p)
	}
}

func TestNewProviderPineconeType(t *testing.T) {
	p := NewProvider(&config.Config{PineconeAPIKey: "pk"}, pinecone.NewClient("pk"))
	if _, ok := p.(*PineconeProvider); !ok {
		t.Fatalf("provider = %T; want *PineconeProvider", p)
	}
}

func TestNewProviderUnconfigured(t *testing.T) {
	if p := NewProvider(&config.Config{}, nil); p != nil {
		t.Fatalf("provider = %T; want nil with nothing configured", p)
	}
}
