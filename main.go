package main

import (
	"log"

	"github.com/joho/godotenv"

	"articlesearch/api"
	"articlesearch/cache"
	"articlesearch/config"
	"articlesearch/drupal"
	"articlesearch/search"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()

	engine := search.NewEngineFromConfig(cfg)
	switch {
	case cfg.DemoMode:
		log.Println("Running in demo mode: lexical fallback over the built-in corpus")
	case engine != nil:
		log.Printf("Vector search enabled against index %q", cfg.PineconeIndex)
	default:
		log.Println("Warning: no vector backend configured and demo mode off; /api/search will return 503")
	}

	var content *drupal.Client
	if cfg.DrupalConfigured() {
		content = drupal.NewClient(cfg)
	} else {
		log.Println("Content source not configured; /api/articles will return 503")
	}

	responseCache := cache.New(cfg)

	server := api.NewServer(cfg, engine, responseCache, content)
	r := server.Router()

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/search?q=<query>&limit=<n>")
	log.Println("  GET  /api/articles/:slug")
	log.Println("  POST /api/revalidate")

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
