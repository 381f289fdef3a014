package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sevrusik/turthsnapbot/pkg/database"
	"github.com/sevrusik/turthsnapbot/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// handleHealth reports overall service health.
//
// Status semantics:
//   - "healthy":   every configured dependency reachable
//   - "degraded":  database reachable, but redis, the object store, or
//     the worker pool is not
//   - "unhealthy": database unreachable (503)
//
// Degraded still returns 200 so the orchestrator does not restart a
// pod that can recover once the transient condition clears.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := gin.H{"service": version.Full()}

	dbStatus, err := database.Health(ctx, s.db.DB())
	resp["database"] = dbStatus
	if err != nil {
		resp["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	status := "healthy"

	if s.rdb != nil {
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			resp["redis"] = gin.H{"status": "unhealthy", "error": err.Error()}
			status = "degraded"
		} else {
			resp["redis"] = gin.H{"status": "healthy"}
		}
	}

	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			resp["storage"] = gin.H{"status": "unhealthy", "error": err.Error()}
			status = "degraded"
		} else {
			resp["storage"] = gin.H{"status": "healthy"}
		}
	}

	if s.pool != nil {
		pool := s.pool.Health()
		resp["queue"] = gin.H{
			"is_healthy":     pool.IsHealthy,
			"active_workers": pool.ActiveWorkers,
			"queue_depth":    pool.QueueDepth,
		}
		if !pool.IsHealthy {
			status = "degraded"
			if pool.DBError != "" {
				resp["queue_error"] = pool.DBError
			}
		}
	}

	resp["status"] = status
	c.JSON(http.StatusOK, resp)
}

// handleQueueHealth exposes the full worker pool health snapshot.
func (s *Server) handleQueueHealth(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "worker pool is not running on this pod"})
		return
	}
	c.JSON(http.StatusOK, s.pool.Health())
}
