package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries all process-wide settings, read once from the environment at
// startup and passed into component constructors. Core packages never consult
// the environment themselves.
type Config struct {
	Port string

	// Content source (Drupal GraphQL, OAuth client-credentials grant)
	DrupalBaseURL      string
	DrupalClientID     string
	DrupalClientSecret string

	// Vector/embedding provider (Pinecone)
	PineconeAPIKey string
	PineconeIndex  string
	EmbedModel     string

	// Cohere alternate embeddings provider
	CohereAPIKey string

	// Demo mode: serve search from the in-process lexical scorer
	DemoMode bool

	// Shared secret for POST /api/revalidate
	RevalidateSecret string

	// Optional Redis response cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Optional S3 archive of indexed articles
	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		DrupalBaseURL:      strings.TrimRight(strings.TrimSpace(os.Getenv("DRUPAL_BASE_URL")), "/"),
		DrupalClientID:     os.Getenv("DRUPAL_CLIENT_ID"),
		DrupalClientSecret: os.Getenv("DRUPAL_CLIENT_SECRET"),
		PineconeAPIKey:     os.Getenv("PINECONE_API_KEY"),
		PineconeIndex:      getEnvOrDefault("PINECONE_INDEX", DefaultIndexName),
		EmbedModel:         getEnvOrDefault("EMBED_MODEL", EmbeddingModel),
		CohereAPIKey:       os.Getenv("COHERE_API_KEY"),
		DemoMode:           isTruthy(os.Getenv("USE_DEMO_MODE")),
		RevalidateSecret:   os.Getenv("REVALIDATE_SECRET"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASS"),
		RedisDB:            getEnvIntOrDefault("REDIS_DB", 0),
		S3Bucket:           strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:           strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:          strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3Prefix:           normalizePrefix(os.Getenv("S3_PREFIX")),
		S3UsePathStyle:     isTruthy(os.Getenv("S3_USE_PATH_STYLE")),
	}
}

// DrupalConfigured reports whether the content source can be reached.
func (c *Config) DrupalConfigured() bool {
	return c.DrupalBaseURL != "" && c.DrupalClientID != "" && c.DrupalClientSecret != ""
}

// VectorConfigured reports whether the vector backend can be reached.
func (c *Config) VectorConfigured() bool {
	return c.PineconeAPIKey != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func isTruthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	return strings.Trim(prefix, "/") + "/"
}
