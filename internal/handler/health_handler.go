package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the storage backend answers a ping
type HealthHandler struct {
	driver string
	ping   func(ctx context.Context) error
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(driver string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{driver: driver, ping: ping}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy", "driver": h.driver})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy", "driver": h.driver})
}
