package api

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// registerRevalidateRoutes registers the cache revalidation webhook.
func (s *Server) registerRevalidateRoutes(r *gin.Engine) {
	r.POST("/api/revalidate", s.handleRevalidate)
}

// RevalidateRequest is the webhook payload, accepted as JSON or
// form-urlencoded. Path and Slug are interchangeable; Slug is resolved to
// its article path.
type RevalidateRequest struct {
	Secret string `json:"secret" form:"secret"`
	Path   string `json:"path" form:"path"`
	Slug   string `json:"slug" form:"slug"`
}

// handleRevalidate invalidates cached content for a path on behalf of the
// CMS. 500 when no secret is configured server-side, 401 on mismatch.
func (s *Server) handleRevalidate(c *gin.Context) {
	if s.cfg.RevalidateSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Revalidation secret not configured"})
		return
	}

	var req RevalidateRequest
	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
	} else {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.cfg.RevalidateSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid secret"})
		return
	}

	path := req.Path
	if path == "" && req.Slug != "" {
		path = "/articles/" + strings.Trim(req.Slug, "/")
	}
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path or slug is required"})
		return
	}

	if err := s.cache.InvalidatePath(c.Request.Context(), path); err != nil {
		log.Printf("Revalidation failed for %q: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Revalidation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revalidated": true, "path": path})
}
