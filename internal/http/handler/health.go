package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

// NewHealthHandler reports on db when it is non-nil.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	timestamp := h.now().UTC().Format(time.RFC3339)
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			slog.WarnContext(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "timestamp": timestamp})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": timestamp})
}
