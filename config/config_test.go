package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PINECONE_INDEX", "")
	t.Setenv("EMBED_MODEL", "")
	t.Setenv("PINECONE_API_KEY", "")
	t.Setenv("USE_DEMO_MODE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q; want 8080", cfg.Port)
	}
	if cfg.PineconeIndex != DefaultIndexName {
		t.Errorf("index = %q; want %q", cfg.PineconeIndex, DefaultIndexName)
	}
	if cfg.EmbedModel != EmbeddingModel {
		t.Errorf("model = %q; want %q", cfg.EmbedModel, EmbeddingModel)
	}
	if cfg.DemoMode {
		t.Error("demo mode on by default")
	}
	if cfg.VectorConfigured() {
		t.Error("vector configured without an API key")
	}
}

func TestLoadDrupalBaseURLTrimmed(t *testing.T) {
	t.Setenv("DRUPAL_BASE_URL", " https://cms.example.com/ ")
	cfg := Load()
	if cfg.DrupalBaseURL != "https://cms.example.com" {
		t.Errorf("base url = %q", cfg.DrupalBaseURL)
	}
}

func TestDrupalConfigured(t *testing.T) {
	t.Setenv("DRUPAL_BASE_URL", "https://cms.example.com")
	t.Setenv("DRUPAL_CLIENT_ID", "id")
	t.Setenv("DRUPAL_CLIENT_SECRET", "")
	if Load().DrupalConfigured() {
		t.Error("configured without a client secret")
	}

	t.Setenv("DRUPAL_CLIENT_SECRET", "secret")
	if !Load().DrupalConfigured() {
		t.Error("not configured with all three settings present")
	}
}

func TestIsTruthy(t *testing.T) {
	for _, val := range []string{"1", "true", "TRUE", "yes", "on", " True "} {
		if !isTruthy(val) {
			t.Errorf("isTruthy(%q) = false", val)
		}
	}
	for _, val := range []string{"", "0", "false", "off", "nope"} {
		if isTruthy(val) {
			t.Errorf("isTruthy(%q) = true", val)
		}
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"archive", "archive/"},
		{"/archive/", "archive/"},
		{" archive/deep ", "archive/deep/"},
	}
	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Errorf("normalizePrefix(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
