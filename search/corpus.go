package search

import (
	"time"

	"articlesearch/types"
)

// DemoCorpus returns the built-in article set served in demo mode, when no
// content source or vector backend is configured. The set is fixed so demo
// search results are reproducible.
func DemoCorpus() []types.Article {
	published := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return []types.Article{
		{
			ID:       "demo-1",
			Title:    "Getting Started with Decoupled Drupal",
			Slug:     "getting-started-with-decoupled-drupal",
			Summary:  "How to pair a Drupal content backend with a modern JavaScript frontend over GraphQL.",
			Body:     "Decoupled Drupal separates content management from presentation. The CMS exposes articles over a GraphQL API while the frontend renders them however it likes. This guide walks through authentication, content modelling, and the queries you need.",
			Category: "CMS",
			Tags:     []string{"drupal", "graphql", "headless"},
			ReadTime: "6 min read", PublishedAt: published("2024-02-12"),
		},
		{
			ID:       "demo-2",
			Title:    "Semantic Search with Vector Embeddings",
			Slug:     "semantic-search-with-vector-embeddings",
			Summary:  "Why embedding vectors beat keyword matching for natural-language queries.",
			Body:     "Embedding models map text to fixed-length vectors so that semantically similar passages land close together. A vector database answers nearest-neighbor queries over those vectors, giving relevance ranking without hand-tuned keyword rules.",
			Category: "Search",
			Tags:     []string{"embeddings", "vector database", "search"},
			ReadTime: "8 min read", PublishedAt: published("2024-03-03"),
		},
		{
			ID:       "demo-3",
			Title:    "TypeScript Patterns for API Clients",
			Slug:     "typescript-patterns-for-api-clients",
			Summary:  "Typed wrappers, discriminated unions, and error handling for HTTP clients.",
			Body:     "A well-typed API client turns runtime surprises into compile-time errors. This article covers response decoding, narrowing with discriminated unions, and retry-friendly error types in TypeScript.",
			Category: "Dev",
			Tags:     []string{"typescript", "api"},
			ReadTime: "5 min read", PublishedAt: published("2024-01-21"),
		},
		{
			ID:       "demo-4",
			Title:    "Caching Strategies for Content Sites",
			Slug:     "caching-strategies-for-content-sites",
			Summary:  "Edge caching, stale-while-revalidate, and webhook-driven invalidation.",
			Body:     "Content sites live or die by their cache hit rate. We compare full-page caching, fragment caching, and webhook-driven revalidation that purges exactly the paths an editor changed.",
			Category: "Performance",
			Tags:     []string{"caching", "cdn", "revalidation"},
			ReadTime: "7 min read", PublishedAt: published("2024-04-18"),
		},
		{
			ID:       "demo-5",
			Title:    "Ranking Quality: Measuring Search Relevance",
			Slug:     "ranking-quality-measuring-search-relevance",
			Summary:  "Precision, recall, and judging whether your search actually finds things.",
			Body:     "Shipping search is easy; knowing it works is not. This piece introduces relevance judgments, precision at k, and cheap offline evaluations you can run before every ranking change.",
			Category: "Search",
			Tags:     []string{"relevance", "ranking", "evaluation"},
			ReadTime: "9 min read", PublishedAt: published("2024-05-07"),
		},
		{
			ID:       "demo-6",
			Title:    "OAuth Client Credentials in Practice",
			Slug:     "oauth-client-credentials-in-practice",
			Summary:  "Service-to-service authentication without a user in the loop.",
			Body:     "The client-credentials grant suits backend integrations: a service exchanges its id and secret for a bearer token and calls the API directly. We cover token caching, expiry, and rotating secrets safely.",
			Category: "Security",
			Tags:     []string{"oauth", "authentication"},
			ReadTime: "5 min read", PublishedAt: published("2024-06-25"),
		},
	}
}
