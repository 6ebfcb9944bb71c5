// Package handler provides HTTP handlers for workspace endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/service"
)

// Handler handles HTTP requests for workspace endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new workspace handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListWorkspaces handles GET /workspaces request.
// @Summary List workspaces
// @Tags Workspaces
// @Produce json
// @Success 200 {object} map[string][]workspaceModel.WorkspaceResponse "Workspaces"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListWorkspaces(c *gin.Context) {
	workspaces, err := h.service.ListWorkspaces(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing workspaces", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": workspaces})
}

// CreateWorkspace handles POST /workspaces request.
// @Summary Create a workspace
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param request body workspaceModel.CreateWorkspaceRequest true "Request"
// @Success 201 {object} workspaceModel.WorkspaceResponse "Created workspace"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateWorkspace(c *gin.Context) {
	var req workspaceModel.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateWorkspace(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, workspaceModel.ErrInvalidWorkspaceName) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating workspace", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AddIntegration handles POST /workspaces/:id/integrations request.
// @Summary Attach an integration to a workspace
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body workspaceModel.AddIntegrationRequest true "Request"
// @Success 201 {object} workspaceModel.IntegrationResponse "Created integration"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /workspaces/{id}/integrations [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddIntegration(c *gin.Context) {
	workspaceID := c.Param("id")

	var req workspaceModel.AddIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddIntegration(c.Request.Context(), workspaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, workspaceModel.ErrInvalidIntegrationType),
			errors.Is(err, workspaceModel.ErrInvalidIntegrationName):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		case errors.Is(err, workspaceModel.ErrWorkspaceNotFound):
			notFoundResponse(c, "workspace not found")
		default:
			h.logger.Errorw("error adding integration", "workspace_id", workspaceID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
