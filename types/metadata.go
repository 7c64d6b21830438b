package types

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Vector-store metadata keys. Metadata carries the display-relevant Article
// fields flattened to strings so a result card renders without a second
// content-source fetch.
const (
	MetaTitle       = "title"
	MetaSlug        = "slug"
	MetaSummary     = "summary"
	MetaCategory    = "category"
	MetaTags        = "tags"
	MetaReadTime    = "readTime"
	MetaPublishedAt = "publishedAt"
	MetaImageURL    = "imageUrl"
	MetaImageAlt    = "imageAlt"
)

// FlattenMetadata maps an Article to the flat string metadata stored with
// its vector. Tags are joined comma-separated; absent image fields become
// empty strings. maxSummaryChars bounds the stored summary (0 = no bound).
func FlattenMetadata(a Article, maxSummaryChars int) map[string]string {
	summary := a.Summary
	if maxSummaryChars > 0 && len(summary) > maxSummaryChars {
		// Back off to a rune boundary so the stored summary stays valid UTF-8.
		cut := maxSummaryChars
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}

	meta := map[string]string{
		MetaTitle:       a.Title,
		MetaSlug:        a.Slug,
		MetaSummary:     summary,
		MetaCategory:    a.Category,
		MetaTags:        strings.Join(a.Tags, ","),
		MetaReadTime:    a.ReadTime,
		MetaPublishedAt: a.PublishedAt.Format(time.RFC3339),
		MetaImageURL:    "",
		MetaImageAlt:    "",
	}
	if a.Image != nil {
		meta[MetaImageURL] = a.Image.URL
		meta[MetaImageAlt] = a.Image.Alt
	}
	return meta
}

// ArticleFromMetadata reconstructs the Article-shaped view of a search match
// from its stored metadata. Body is not stored and stays empty.
func ArticleFromMetadata(id string, meta map[string]string) Article {
	a := Article{
		ID:       id,
		Title:    meta[MetaTitle],
		Slug:     meta[MetaSlug],
		Summary:  meta[MetaSummary],
		Category: meta[MetaCategory],
		ReadTime: meta[MetaReadTime],
		Tags:     []string{},
	}
	if raw := meta[MetaTags]; raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				a.Tags = append(a.Tags, t)
			}
		}
	}
	if ts := meta[MetaPublishedAt]; ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			a.PublishedAt = t
		}
	}
	if url := meta[MetaImageURL]; url != "" {
		a.Image = &Image{URL: url, Alt: meta[MetaImageAlt]}
	}
	return a
}
