package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerArticleRoutes registers the single-article lookup endpoint.
func (s *Server) registerArticleRoutes(r *gin.Engine) {
	r.GET("/api/articles/:slug", s.handleGetArticle)
}

// handleGetArticle fetches one article from the content source by slug.
// 503 when no content source is configured, 404 when the slug resolves to
// nothing.
func (s *Server) handleGetArticle(c *gin.Context) {
	if s.content == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content source is not configured"})
		return
	}

	slug := c.Param("slug")
	article, err := s.content.FetchArticleByPath(c.Request.Context(), "/articles/"+slug)
	if err != nil {
		log.Printf("Article fetch failed for %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}
