package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cienciascontic/textlabx/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.HealthChecker
	redis      *redis.Client
}

// NewHealthHandler creates a new health handler. Either dependency may be nil.
func NewHealthHandler(classifier service.HealthChecker, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		classifier: classifier,
		redis:      redis,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// The classification server being down degrades answers to sentinels
	// but does not make the gateway itself unhealthy
	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			components["classifier"] = "error: " + err.Error()
		} else {
			components["classifier"] = "ok"
		}
	} else {
		components["classifier"] = "not configured"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "classifier unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
