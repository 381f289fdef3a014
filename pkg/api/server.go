// Package api is the operational HTTP surface: health probes for the
// orchestrator and read-only analysis lookups for support tooling. It
// is never exposed to end users; the bot is the only product surface.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sevrusik/turthsnapbot/pkg/database"
	"github.com/sevrusik/turthsnapbot/pkg/queue"
	"github.com/sevrusik/turthsnapbot/pkg/services"
	"github.com/sevrusik/turthsnapbot/pkg/storage"
)

// Server hosts the operational endpoints.
type Server struct {
	db       *database.Client
	rdb      *redis.Client
	store    *storage.Store
	pool     *queue.WorkerPool
	analyses *services.AnalysisService

	httpServer *http.Server
}

// NewServer creates the operational API server. rdb, store, and pool
// may each be nil when the component does not run on this pod; the
// health endpoints skip what is absent.
func NewServer(db *database.Client, rdb *redis.Client, store *storage.Store, pool *queue.WorkerPool, analyses *services.AnalysisService) *Server {
	return &Server{
		db:       db,
		rdb:      rdb,
		store:    store,
		pool:     pool,
		analyses: analyses,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", s.handleHealth)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/queue/health", s.handleQueueHealth)
		v1.GET("/analyses/:id", s.handleGetAnalysis)
	}

	return router
}

// Start begins serving on the given port. Blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start(port int) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Operational API listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("operational API server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger emits one structured line per request. Paths carry no
// personal data; analysis ids are already pseudonymous.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"component", "api",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds())
	}
}
