// Package handler provides HTTP handlers for sync job endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/service"
)

// Handler handles HTTP requests for sync job endpoints.
type Handler struct {
	jobs   service.JobService
	logger *zap.SugaredLogger
}

// New creates a new sync job handler instance.
func New(jobs service.JobService, logger *zap.SugaredLogger) *Handler {
	return &Handler{jobs: jobs, logger: logger}
}

// EnqueueSync handles POST /jobs/sync request.
// @Summary Start a sync job
// @Description Syncs one workspace, or every workspace when workspace_id is omitted
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body ingestionModel.EnqueueSyncRequest false "Request"
// @Success 202 {object} ingestionModel.EnqueueSyncResponse "Accepted job"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /jobs/sync [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) EnqueueSync(c *gin.Context) {
	var req ingestionModel.EnqueueSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.jobs.Enqueue(c.Request.Context(), req.WorkspaceID)
	if err != nil {
		if service.IsNotFound(err) {
			notFoundResponse(c, "workspace not found")
			return
		}
		h.logger.Errorw("error enqueuing sync job", "workspace_id", req.WorkspaceID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// GetJob handles GET /jobs/:id request.
// @Summary Get sync job status
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} ingestionModel.JobResponse "Job"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /jobs/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetJob(c *gin.Context) {
	resp, err := h.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if service.IsNotFound(err) {
			notFoundResponse(c, "job not found")
			return
		}
		h.logger.Errorw("error getting sync job", "job_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
