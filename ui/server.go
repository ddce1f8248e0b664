package ui

import (
	"context"
	"fmt"
	"net/http"

	"realestate/app"
	"realestate/domain/area"
	"realestate/internal"
	"realestate/ui/middleware"

	"github.com/gin-gonic/gin"
)

// AreaAnalyzer is the read-only analysis API the HTTP layer serves
type AreaAnalyzer interface {
	Analyze(ctx context.Context, req app.AnalyzeRequest) (*area.Report, error)
	Areas(ctx context.Context) ([]string, error)
	Columns(ctx context.Context) ([]string, error)
	RowCount() (int, bool)
}

// Options configures the HTTP server
type Options struct {
	GinMode        string
	AllowedOrigins []string
}

// Server represents the JSON API server
type Server struct {
	router   *gin.Engine
	analyzer AreaAnalyzer
	logger   *internal.Logger
}

// NewServer creates the API server with its middleware and routes
func NewServer(analyzer AreaAnalyzer, opts Options) *Server {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	s := &Server{
		router:   gin.New(),
		analyzer: analyzer,
		logger:   internal.DefaultLogger.With("API"),
	}

	s.setupMiddleware(opts)
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(gin.Logger())
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{errorKey: fmt.Sprint(recovered)})
	}))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(opts.AllowedOrigins))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/analyze/", s.handleAnalyze)
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/areas/", s.handleAreas)
	api.GET("/areas", s.handleAreas)
	api.GET("/columns/", s.handleColumns)
	api.GET("/columns", s.handleColumns)
}

// Handler exposes the router for http.Server and tests
func (s *Server) Handler() http.Handler {
	return s.router
}
