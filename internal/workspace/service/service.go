// Package service provides business logic layer for workspace module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
)

const maxNameLength = 255

// Service defines the interface for workspace business logic operations.
type Service interface {
	// CreateWorkspace creates a new workspace.
	CreateWorkspace(ctx context.Context, req *workspaceModel.CreateWorkspaceRequest) (*workspaceModel.WorkspaceResponse, error)

	// ListWorkspaces returns every workspace.
	ListWorkspaces(ctx context.Context) ([]workspaceModel.WorkspaceResponse, error)

	// AddIntegration attaches an ACTIVE integration to an existing workspace.
	AddIntegration(
		ctx context.Context,
		workspaceID string,
		req *workspaceModel.AddIntegrationRequest,
	) (*workspaceModel.IntegrationResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new workspace service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateWorkspace creates a new workspace.
func (s *service) CreateWorkspace(
	ctx context.Context,
	req *workspaceModel.CreateWorkspaceRequest,
) (*workspaceModel.WorkspaceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, workspaceModel.ErrInvalidWorkspaceName
	}

	ws, err := s.repo.CreateWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("workspace created", "workspace_id", ws.ID, "name", ws.Name)
	return toWorkspaceResponse(ws), nil
}

// ListWorkspaces returns every workspace.
func (s *service) ListWorkspaces(ctx context.Context) ([]workspaceModel.WorkspaceResponse, error) {
	workspaces, err := s.repo.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]workspaceModel.WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		resp = append(resp, *toWorkspaceResponse(&workspaces[i]))
	}
	return resp, nil
}

// AddIntegration attaches an ACTIVE integration to an existing workspace.
func (s *service) AddIntegration(
	ctx context.Context,
	workspaceID string,
	req *workspaceModel.AddIntegrationRequest,
) (*workspaceModel.IntegrationResponse, error) {
	integrationType, err := workspaceModel.ParseIntegrationType(req.Type)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, workspaceModel.ErrInvalidIntegrationName
	}

	if _, err := s.repo.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	integration := &workspaceModel.Integration{
		WorkspaceID: workspaceID,
		Type:        integrationType,
		Status:      workspaceModel.IntegrationStatusActive,
		Name:        name,
		Config:      workspaceModel.Settings(req.Config),
	}
	if err := s.repo.CreateIntegration(ctx, integration); err != nil {
		return nil, err
	}

	s.logger.Infow("integration added",
		"workspace_id", workspaceID,
		"integration_id", integration.ID,
		"type", integration.Type,
	)

	return ToIntegrationResponse(integration), nil
}

func toWorkspaceResponse(ws *workspaceModel.Workspace) *workspaceModel.WorkspaceResponse {
	return &workspaceModel.WorkspaceResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedAt: ws.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToIntegrationResponse converts an integration to its API representation.
func ToIntegrationResponse(integration *workspaceModel.Integration) *workspaceModel.IntegrationResponse {
	resp := &workspaceModel.IntegrationResponse{
		ID:          integration.ID,
		WorkspaceID: integration.WorkspaceID,
		Type:        string(integration.Type),
		Status:      string(integration.Status),
		Name:        integration.Name,
	}
	if integration.LastSyncedAt != nil {
		resp.LastSyncedAt = integration.LastSyncedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
