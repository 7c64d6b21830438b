package drupal

import (
	"strings"
	"time"

	"articlesearch/types"
)

// ArticleNode is the raw article shape returned by the GraphQL schema.
// Optional fields decode to zero values; Normalize applies the defaults.
type ArticleNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Created struct {
		Time string `json:"time"`
	} `json:"created"`
	Body struct {
		Processed string `json:"processed"`
	} `json:"body"`
	Summary struct {
		Value string `json:"value"`
	} `json:"summary"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
	ReadTime string `json:"readTime"`
	Image    *struct {
		URL    string `json:"url"`
		Alt    string `json:"alt"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"image"`
}

const pathPrefix = "/articles/"

// Normalize maps a raw content node into the canonical Article shape.
// Returns nil only when the node itself is absent or empty; malformed
// optional fields never produce an error, defaults apply instead.
func Normalize(node *ArticleNode) *types.Article {
	if node == nil || node.ID == "" {
		return nil
	}

	slug := strings.TrimPrefix(node.Path, pathPrefix)
	if slug == "" {
		slug = node.ID
	}

	category := node.Category
	if category == "" {
		category = "General"
	}

	readTime := node.ReadTime
	if readTime == "" {
		readTime = "5 min read"
	}

	publishedAt := time.Now()
	if node.Created.Time != "" {
		if t, err := time.Parse(time.RFC3339, node.Created.Time); err == nil {
			publishedAt = t
		}
	}

	article := &types.Article{
		ID:          node.ID,
		Title:       node.Title,
		Slug:        slug,
		Body:        node.Body.Processed,
		Summary:     node.Summary.Value,
		Category:    category,
		Tags:        splitTags(node.Tags),
		ReadTime:    readTime,
		PublishedAt: publishedAt,
	}

	if node.Image != nil && node.Image.URL != "" {
		alt := node.Image.Alt
		if alt == "" {
			alt = node.Title
		}
		article.Image = &types.Image{
			URL:    node.Image.URL,
			Alt:    alt,
			Width:  node.Image.Width,
			Height: node.Image.Height,
		}
	}

	return article
}

// splitTags turns a comma-delimited tag field into trimmed ordered tags.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
