// Package handler provides HTTP handlers for forecast endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	forecastModel "github.com/Mouadistaa/project-pulse-ai/internal/forecast/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/forecast/service"
)

// Handler handles HTTP requests for forecast endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new forecast handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetForecast handles GET /workspaces/:id/forecast request.
// @Summary Estimate the probability of delivering a backlog by a date
// @Tags Forecast
// @Produce json
// @Param id path string true "Workspace ID"
// @Param target_date query string true "Target date (YYYY-MM-DD)"
// @Param backlog_size query int true "Remaining items"
// @Success 200 {object} forecastModel.ForecastResponse "Forecast"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id}/forecast [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetForecast(c *gin.Context) {
	workspaceID := c.Param("id")

	target, err := forecastModel.ParseTargetDate(c.Query("target_date"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "target_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	backlog, err := strconv.Atoi(c.Query("backlog_size"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "backlog_size must be an integer", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Forecast(c.Request.Context(), workspaceID, target, backlog)
	if err != nil {
		if errors.Is(err, forecastModel.ErrInvalidBacklogSize) {
			errorResponse(c, "INVALID_REQUEST", "backlog_size must not be negative", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error computing forecast", "workspace_id", workspaceID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
