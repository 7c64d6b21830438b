package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"articlesearch/cache"
	"articlesearch/config"
	"articlesearch/types"
)

// registerSearchRoutes registers the search endpoint.
func (s *Server) registerSearchRoutes(r *gin.Engine) {
	r.GET("/api/search", s.handleSearch)
}

// handleSearch answers GET /api/search?q=<string>&limit=<int>.
// Validation happens before any backend call; an unconfigured engine is a
// 503, a backend failure a generic 500.
func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter \"q\" is required"})
		return
	}

	if s.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Search is not configured. Set PINECONE_API_KEY or enable demo mode.",
		})
		return
	}

	limit := parseLimit(c.Query("limit"))

	key := cache.SearchKey(query, limit)
	if cached := s.cache.GetSearch(c.Request.Context(), key); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	results, err := s.engine.Search(c.Request.Context(), query, limit)
	if err != nil {
		log.Printf("Search failed for %q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	resp := &types.SearchResponse{
		Query:        query,
		Results:      results,
		TotalResults: len(results),
	}
	s.cache.SetSearch(c.Request.Context(), key, resp)

	c.JSON(http.StatusOK, resp)
}

// parseLimit clamps the requested result count to [1, MaxSearchLimit],
// defaulting when absent or malformed.
func parseLimit(raw string) int {
	limit := config.DefaultSearchLimit
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > config.MaxSearchLimit {
		limit = config.MaxSearchLimit
	}
	return limit
}
