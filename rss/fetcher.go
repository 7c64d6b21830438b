package rss

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"articlesearch/types"
)

// FeedPresets maps friendly names to feed URLs for the index CLI.
var FeedPresets = map[string]string{
	"hn": "https://hnrss.org/newest",
	"tr": "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a preset name to its URL, passing direct URLs
// through unchanged.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// FetchFeed retrieves an RSS/Atom feed and maps its items to canonical
// Articles, applying the same defaults as the content-source normalizer so
// both sources feed the indexer interchangeably.
func FetchFeed(ctx context.Context, feedURL string, maxCount int) ([]types.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return mapFeed(feed, maxCount), nil
}

// ParseFeed maps an already-parsed feed document; split out for tests.
func ParseFeed(raw string, maxCount int) ([]types.Article, error) {
	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return mapFeed(feed, maxCount), nil
}

func mapFeed(feed *gofeed.Feed, maxCount int) []types.Article {
	count := len(feed.Items)
	if maxCount > 0 && count > maxCount {
		count = maxCount
	}

	articles := make([]types.Article, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		id := item.GUID
		if id == "" && item.Link != "" {
			id = generateID(item.Link)
		}
		if id == "" {
			continue
		}

		publishedAt := time.Now()
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		category := "General"
		if len(item.Categories) > 0 {
			category = item.Categories[0]
		}

		body := item.Content
		if body == "" {
			body = item.Description
		}

		article := types.Article{
			ID:          id,
			Title:       item.Title,
			Slug:        slugFromLink(item.Link, id),
			Body:        body,
			Summary:     item.Description,
			Category:    category,
			Tags:        append([]string{}, item.Categories...),
			ReadTime:    "5 min read",
			PublishedAt: publishedAt,
		}

		if item.Image != nil && item.Image.URL != "" {
			alt := item.Image.Title
			if alt == "" {
				alt = item.Title
			}
			article.Image = &types.Image{URL: item.Image.URL, Alt: alt}
		}

		articles = append(articles, article)
	}
	return articles
}

// slugFromLink derives a stable slug from the item link's last path segment.
func slugFromLink(link, fallback string) string {
	link = strings.TrimRight(link, "/")
	if idx := strings.LastIndex(link, "/"); idx >= 0 && idx < len(link)-1 {
		if seg := link[idx+1:]; seg != "" && !strings.Contains(seg, "?") {
			return seg
		}
	}
	return fallback
}

// generateID creates a short stable ID by hashing the input.
func generateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
