// Package repository provides data access layer for sync jobs.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
)

// Repository defines the interface for sync job data access operations.
type Repository interface {
	// Create stores a QUEUED job.
	Create(ctx context.Context, workspaceID *string) (*ingestionModel.SyncJob, error)

	// Get finds a job by id.
	Get(ctx context.Context, id string) (*ingestionModel.SyncJob, error)

	// MarkRunning moves a QUEUED job to RUNNING.
	MarkRunning(ctx context.Context, id string) error

	// Finish records the terminal status of a job.
	Finish(ctx context.Context, id string, status ingestionModel.JobStatus, errText string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new sync job repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores a QUEUED job.
func (r *repository) Create(ctx context.Context, workspaceID *string) (*ingestionModel.SyncJob, error) {
	job := &ingestionModel.SyncJob{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Status:      ingestionModel.JobStatusQueued,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Get finds a job by id.
func (r *repository) Get(ctx context.Context, id string) (*ingestionModel.SyncJob, error) {
	var job ingestionModel.SyncJob
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ingestionModel.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// MarkRunning moves a QUEUED job to RUNNING.
func (r *repository) MarkRunning(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, map[string]interface{}{
		"status": ingestionModel.JobStatusRunning,
	})
}

// Finish records the terminal status of a job.
func (r *repository) Finish(
	ctx context.Context,
	id string,
	status ingestionModel.JobStatus,
	errText string,
	at time.Time,
) error {
	return r.setStatus(ctx, id, map[string]interface{}{
		"status":      status,
		"error":       errText,
		"finished_at": at,
	})
}

func (r *repository) setStatus(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&ingestionModel.SyncJob{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ingestionModel.ErrJobNotFound
	}
	return nil
}
