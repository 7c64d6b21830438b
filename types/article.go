package types

import "time"

// Article is the canonical content record produced by the content source
// normalizers. The slug is the external-facing identifier (URLs); ID is the
// internal key used by the vector store.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ReadTime    string    `json:"readTime"`
	PublishedAt time.Time `json:"publishedAt"`
	Image       *Image    `json:"image,omitempty"`
}

// Image holds display metadata for an article's cover image.
type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// SearchResult is the uniform result shape produced by both relevance
// engines. Score is in [0, 1]; result lists are ordered by descending score.
type SearchResult struct {
	ID      string  `json:"id"`
	Score   float64 `json:"score"`
	Article Article `json:"article"`
}

// SearchResponse is the wire format returned by GET /api/search.
type SearchResponse struct {
	Query        string         `json:"query"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"totalResults"`
}
