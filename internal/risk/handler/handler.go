// Package handler provides HTTP handlers for risk endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
)

// Handler handles HTTP requests for risk endpoints.
type Handler struct {
	service      service.Service
	defaultLimit int
	logger       *zap.SugaredLogger
}

// New creates a new risk handler instance.
func New(svc service.Service, defaultLimit int, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, defaultLimit: defaultLimit, logger: logger}
}

// ListRisks handles GET /workspaces/:id/risks request.
// @Summary List risk signals, newest first
// @Tags Risks
// @Produce json
// @Param id path string true "Workspace ID"
// @Param limit query int false "Maximum number of signals"
// @Success 200 {object} map[string][]riskModel.SignalResponse "Signals"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id}/risks [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListRisks(c *gin.Context) {
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

	signals, err := h.service.ListSignals(c.Request.Context(), workspaceID, limit)
	if err != nil {
		h.logger.Errorw("error listing risks", "workspace_id", workspaceID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"risks": signals})
}
