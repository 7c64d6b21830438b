package config

import "time"

// Vector index defaults
const (
	// DefaultIndexName is the Pinecone index used when none is configured
	DefaultIndexName = "decoupled-search"

	// EmbeddingModel is the hosted embedding model used for both passages and queries
	EmbeddingModel = "llama-text-embed-v2"

	// EmbeddingDimension is the fixed output dimensionality of EmbeddingModel
	EmbeddingDimension = 1024
)

// Indexing constants
const (
	// MaxEmbedInputChars bounds the embedding input size to avoid provider-side rejection
	MaxEmbedInputChars = 32000

	// MaxMetadataSummaryChars bounds the summary stored in vector metadata
	MaxMetadataSummaryChars = 500

	// UpsertDelay is the fixed pause between upserts to respect provider rate limits
	UpsertDelay = 250 * time.Millisecond

	// IndexReadyPollInterval is the wait between index readiness checks after creation
	IndexReadyPollInterval = 2 * time.Second

	// IndexReadyMaxPolls caps the readiness wait after index creation
	IndexReadyMaxPolls = 15
)

// Search constants
const (
	// DefaultSearchLimit is the result count when the caller omits limit
	DefaultSearchLimit = 10

	// MaxSearchLimit caps the per-request result count
	MaxSearchLimit = 50

	// MaxArticlesPerFetch is the page size for content-source article queries
	MaxArticlesPerFetch = 100
)
