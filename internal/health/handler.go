// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mouadistaa/project-pulse-ai/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Pinger is a dependency the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	deps   map[string]Pinger
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
// deps are checked after the database, keyed by the name reported on failure.
func New(db *gorm.DB, logger *zap.SugaredLogger, deps map[string]Pinger) *Handler {
	return &Handler{
		db:     db,
		deps:   deps,
		logger: logger,
	}
}

// PoolStats is a snapshot of the database connection pool.
type PoolStats struct {
	MaxOpen        int   `json:"max_open_connections"`
	Open           int   `json:"open_connections"`
	InUse          int   `json:"in_use"`
	Idle           int   `json:"idle"`
	WaitCount      int64 `json:"wait_count"`
	WaitDurationMs int64 `json:"wait_duration_ms"`
}

// Response represents health check response.
type Response struct {
	Status string     `json:"status"`
	Failed []string   `json:"failed,omitempty"`
	Pool   *PoolStats `json:"pool,omitempty"`
}

// Check handles GET /health request.
// @Summary Liveness and dependency check
// @Tags Health
// @Produce json
// @Success 200 {object} Response "Healthy"
// @Failure 503 {object} Response "A dependency is unavailable"
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	var failed []string
	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "dependency", "database", "error", err)
		failed = append(failed, "database")
	}

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.deps[name].Ping(ctx); err != nil {
			h.logger.Warnw("health check failed", "dependency", name, "error", err)
			failed = append(failed, name)
		}
	}

	resp := Response{Status: "ok", Pool: h.poolStats()}
	if len(failed) > 0 {
		resp.Status = "unhealthy"
		resp.Failed = failed
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) poolStats() *PoolStats {
	stats, err := database.GetStats(h.db)
	if err != nil {
		return nil
	}
	return &PoolStats{
		MaxOpen:        stats.MaxOpenConnections,
		Open:           stats.OpenConnections,
		InUse:          stats.InUse,
		Idle:           stats.Idle,
		WaitCount:      stats.WaitCount,
		WaitDurationMs: stats.WaitDuration.Milliseconds(),
	}
}
