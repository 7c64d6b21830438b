package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"articlesearch/common"
	"articlesearch/config"
	"articlesearch/drupal"
	"articlesearch/embeddings"
	"articlesearch/indexer"
	"articlesearch/pinecone"
	"articlesearch/rss"
	"articlesearch/types"
)

func main() {
	_ = godotenv.Load()

	source := flag.String("source", "drupal", "content source: drupal or rss")
	feed := flag.String("feed", "", "RSS feed URL or preset name (with -source=rss)")
	reset := flag.Bool("reset", false, "clear the index before writing")
	flag.Parse()

	cfg := config.Load()
	if !cfg.VectorConfigured() {
		log.Fatal("PINECONE_API_KEY is required for indexing")
	}

	ctx := context.Background()

	articles, err := fetchArticles(ctx, cfg, *source, *feed)
	if err != nil {
		log.Fatalf("Failed to fetch articles: %v", err)
	}
	if len(articles) == 0 {
		log.Println("No articles to index")
		return
	}
	log.Printf("Fetched %d article(s) from %s", len(articles), *source)

	client := pinecone.NewClient(cfg.PineconeAPIKey)
	provider := embeddings.NewProvider(cfg, client)
	ix := indexer.New(client, provider, cfg)

	if archiver := initializeArchiver(ctx, cfg); archiver != nil {
		ix = ix.WithArchiver(archiver)
	}

	summary, err := ix.Run(ctx, articles, *reset)
	if err != nil {
		log.Fatalf("Indexing failed: %v", err)
	}
	log.Printf("Done: %d article(s) indexed", summary.Count)
}

func fetchArticles(ctx context.Context, cfg *config.Config, source, feed string) ([]types.Article, error) {
	switch source {
	case "rss":
		if feed == "" {
			log.Fatal("-feed is required with -source=rss")
		}
		return rss.FetchFeed(ctx, rss.ResolveFeedURL(feed), config.MaxArticlesPerFetch)
	default:
		if !cfg.DrupalConfigured() {
			log.Fatal("DRUPAL_BASE_URL, DRUPAL_CLIENT_ID and DRUPAL_CLIENT_SECRET are required for -source=drupal")
		}
		return drupal.NewClient(cfg).FetchArticles(ctx)
	}
}

// initializeArchiver returns an S3 archiver if configured via env; archiving
// is skipped otherwise.
func initializeArchiver(ctx context.Context, cfg *config.Config) indexer.Archiver {
	if cfg.S3Bucket == "" {
		log.Println("S3 not configured; skipping article archiving")
		return nil
	}

	client, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}

	log.Printf("Archiving indexed articles to S3 bucket %q with prefix %q", cfg.S3Bucket, cfg.S3Prefix)
	return indexer.NewS3Archiver(client, cfg.S3Bucket, cfg.S3Prefix)
}
