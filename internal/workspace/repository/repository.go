// Package repository provides data access layer for workspace module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
)

// Repository defines the interface for workspace data access operations.
type Repository interface {
	// CreateWorkspace creates a new workspace.
	CreateWorkspace(ctx context.Context, name string) (*workspaceModel.Workspace, error)

	// GetWorkspace finds a workspace by id.
	GetWorkspace(ctx context.Context, id string) (*workspaceModel.Workspace, error)

	// ListWorkspaces returns all workspaces ordered by creation time.
	ListWorkspaces(ctx context.Context) ([]workspaceModel.Workspace, error)

	// CreateIntegration stores a new integration, assigning its id.
	CreateIntegration(ctx context.Context, integration *workspaceModel.Integration) error

	// ListActiveIntegrations returns the ACTIVE integrations of a workspace.
	ListActiveIntegrations(ctx context.Context, workspaceID string) ([]workspaceModel.Integration, error)

	// TouchIntegration sets last_synced_at of an integration.
	TouchIntegration(ctx context.Context, integrationID string, at time.Time) error

	// GetOrCreateRepo returns the repo keyed by (workspace, external id), creating it if absent.
	GetOrCreateRepo(ctx context.Context, workspaceID, externalID, name, url string) (*workspaceModel.Repo, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new workspace repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWorkspace creates a new workspace.
func (r *repository) CreateWorkspace(ctx context.Context, name string) (*workspaceModel.Workspace, error) {
	ws := &workspaceModel.Workspace{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(ws).Error; err != nil {
		return nil, err
	}

	return ws, nil
}

// GetWorkspace finds a workspace by id.
func (r *repository) GetWorkspace(ctx context.Context, id string) (*workspaceModel.Workspace, error) {
	var ws workspaceModel.Workspace
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ws).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workspaceModel.ErrWorkspaceNotFound
		}
		return nil, err
	}

	return &ws, nil
}

// ListWorkspaces returns all workspaces ordered by creation time.
func (r *repository) ListWorkspaces(ctx context.Context) ([]workspaceModel.Workspace, error) {
	var workspaces []workspaceModel.Workspace
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&workspaces).Error
	if err != nil {
		return nil, err
	}

	return workspaces, nil
}

// CreateIntegration stores a new integration, assigning its id.
func (r *repository) CreateIntegration(ctx context.Context, integration *workspaceModel.Integration) error {
	if integration.ID == "" {
		integration.ID = uuid.NewString()
	}
	if integration.Status == "" {
		integration.Status = workspaceModel.IntegrationStatusActive
	}
	if integration.Config == nil {
		integration.Config = workspaceModel.Settings{}
	}
	if integration.CreatedAt.IsZero() {
		integration.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(integration).Error
}

// ListActiveIntegrations returns the ACTIVE integrations of a workspace.
func (r *repository) ListActiveIntegrations(
	ctx context.Context,
	workspaceID string,
) ([]workspaceModel.Integration, error) {
	var integrations []workspaceModel.Integration
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND status = ?", workspaceID, workspaceModel.IntegrationStatusActive).
		Order("created_at ASC, id ASC").
		Find(&integrations).Error
	if err != nil {
		return nil, err
	}

	return integrations, nil
}

// TouchIntegration sets last_synced_at of an integration.
func (r *repository) TouchIntegration(ctx context.Context, integrationID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&workspaceModel.Integration{}).
		Where("id = ?", integrationID).
		Update("last_synced_at", at.UTC()).Error
}

// GetOrCreateRepo returns the repo keyed by (workspace, external id), creating it if absent.
func (r *repository) GetOrCreateRepo(
	ctx context.Context,
	workspaceID, externalID, name, url string,
) (*workspaceModel.Repo, error) {
	candidate := &workspaceModel.Repo{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		ExternalID:  externalID,
		Name:        name,
		URL:         url,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "external_id"}},
			DoNothing: true,
		}).
		Create(candidate).Error
	if err != nil {
		return nil, err
	}

	var repo workspaceModel.Repo
	err = r.db.WithContext(ctx).
		Where("workspace_id = ? AND external_id = ?", workspaceID, externalID).
		First(&repo).Error
	if err != nil {
		return nil, err
	}

	return &repo, nil
}
