// Package handler provides HTTP handlers for alert endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/alert/service"
)

// DefaultListLimit is the number of alerts returned when no limit is given.
const DefaultListLimit = 50

// Handler handles HTTP requests for alert endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new alert handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListAlerts handles GET /workspaces/:id/alerts request.
// @Summary List alerts of a workspace, newest first
// @Tags Alerts
// @Produce json
// @Param id path string true "Workspace ID"
// @Param status query string false "NEW, ACK or RESOLVED"
// @Param limit query int false "Maximum number of alerts"
// @Success 200 {object} map[string][]alertModel.AlertResponse "Alerts"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id}/alerts [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListAlerts(c *gin.Context) {
	workspaceID := c.Param("id")

	limit := DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errorResponse(c, "INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	alerts, err := h.service.List(c.Request.Context(), workspaceID, c.Query("status"), limit)
	if err != nil {
		if errors.Is(err, alertModel.ErrInvalidStatus) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error listing alerts", "workspace_id", workspaceID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// Acknowledge handles POST /alerts/:id/ack request.
// @Summary Acknowledge a NEW alert
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} alertModel.AlertResponse "Acknowledged alert"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 409 {object} ErrorResponse "Alert is not NEW (INVALID_TRANSITION)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id}/ack [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Acknowledge(c *gin.Context) {
	alert, err := h.service.Acknowledge(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, alert, err)
}

// Resolve handles POST /alerts/:id/resolve request.
// @Summary Resolve a NEW or acknowledged alert
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} alertModel.AlertResponse "Resolved alert"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 409 {object} ErrorResponse "Alert already resolved (INVALID_TRANSITION)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{id}/resolve [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Resolve(c *gin.Context) {
	alert, err := h.service.Resolve(c.Request.Context(), c.Param("id"))
	h.respondTransition(c, alert, err)
}

func (h *Handler) respondTransition(c *gin.Context, alert *alertModel.AlertResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, alertModel.ErrAlertNotFound):
			notFoundResponse(c, "alert not found")
		case errors.Is(err, alertModel.ErrInvalidTransition):
			errorResponse(c, "INVALID_TRANSITION", "alert cannot move to the requested status", http.StatusConflict)
		default:
			h.logger.Errorw("error changing alert status", "alert_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, alert)
}
