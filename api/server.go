package api

import (
	"github.com/gin-gonic/gin"

	"articlesearch/cache"
	"articlesearch/config"
	"articlesearch/drupal"
	"articlesearch/search"
)

// Server holds the wired dependencies for the HTTP surface. Engine and
// content may be nil when unconfigured; handlers report that state rather
// than crash.
type Server struct {
	cfg     *config.Config
	engine  search.Engine
	cache   *cache.Cache
	content *drupal.Client
}

// NewServer assembles the API server from its constructed dependencies.
func NewServer(cfg *config.Config, engine search.Engine, c *cache.Cache, content *drupal.Client) *Server {
	return &Server{cfg: cfg, engine: engine, cache: c, content: content}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.registerSearchRoutes(r)
	s.registerRevalidateRoutes(r)
	s.registerArticleRoutes(r)
	s.registerHealthRoutes(r)
	return r
}
