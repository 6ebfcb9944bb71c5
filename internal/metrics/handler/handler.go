// Package handler provides HTTP handlers for metrics endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
)

// Handler handles HTTP requests for metrics endpoints.
type Handler struct {
	service      service.Service
	defaultLimit int
	logger       *zap.SugaredLogger
}

// New creates a new metrics handler instance.
func New(svc service.Service, defaultLimit int, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, defaultLimit: defaultLimit, logger: logger}
}

// ListMetrics handles GET /workspaces/:id/metrics request.
// @Summary List daily metrics snapshots, newest first
// @Tags Metrics
// @Produce json
// @Param id path string true "Workspace ID"
// @Param limit query int false "Maximum number of snapshots"
// @Success 200 {object} map[string][]metricsModel.SnapshotResponse "Snapshots"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id}/metrics [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMetrics(c *gin.Context) {
	workspaceID := c.Param("id")

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errorResponse(c, "INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	snapshots, err := h.service.ListSnapshots(c.Request.Context(), workspaceID, limit)
	if err != nil {
		h.logger.Errorw("error listing metrics", "workspace_id", workspaceID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": snapshots})
}
