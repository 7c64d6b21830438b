package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHealthRoutes registers the health check endpoint.
func (s *Server) registerHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", s.handleHealth)
}

func (s *Server) handleHealth(c *gin.Context) {
	mode := "unconfigured"
	switch {
	case s.cfg.DemoMode:
		mode = "demo"
	case s.engine != nil:
		mode = "vector"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"mode":   mode,
	})
}
