package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/pkg/database"
	"github.com/quillhq/quill/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// HealthCheck handles GET /health: database connectivity plus a worker pool
// snapshot when a pool is wired.
func (s *Server) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	body := gin.H{"status": "healthy", "version": version.Full()}
	healthy := true

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db)
		body["database"] = dbHealth
		if err != nil {
			healthy = false
		}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["pool"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	if !healthy {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
