// Package repository provides data access layer for daily metrics snapshots.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
)

// Repository defines the interface for snapshot data access operations.
type Repository interface {
	// Upsert writes the snapshot for (workspace, day), overwriting an existing row.
	Upsert(ctx context.Context, snapshot *metricsModel.Snapshot) error

	// Get returns the snapshot for (workspace, day).
	Get(ctx context.Context, workspaceID string, day time.Time) (*metricsModel.Snapshot, error)

	// Latest returns up to limit snapshots newest-first.
	Latest(ctx context.Context, workspaceID string, limit int) ([]metricsModel.Snapshot, error)

	// ThroughputHistory returns up to limit most recent non-null throughputs, oldest first.
	ThroughputHistory(ctx context.Context, workspaceID string, limit int) ([]float64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new snapshot repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert writes the snapshot for (workspace, day) in a single statement.
func (r *repository) Upsert(ctx context.Context, snapshot *metricsModel.Snapshot) error {
	snapshot.Day = activityModel.DayOf(snapshot.Day)
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	if snapshot.ComputedAt.IsZero() {
		snapshot.ComputedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"lead_time_p50", "lead_time_p85", "wip", "throughput",
				"review_time_p50", "bug_ratio", "pr_size_p50", "computed_at",
			}),
		}).
		Create(snapshot).Error
}

// Get returns the snapshot for (workspace, day).
func (r *repository) Get(ctx context.Context, workspaceID string, day time.Time) (*metricsModel.Snapshot, error) {
	var snapshot metricsModel.Snapshot
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND day = ?", workspaceID, activityModel.DayOf(day)).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, metricsModel.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// Latest returns up to limit snapshots newest-first.
func (r *repository) Latest(ctx context.Context, workspaceID string, limit int) ([]metricsModel.Snapshot, error) {
	var snapshots []metricsModel.Snapshot
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("day DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// ThroughputHistory returns up to limit most recent non-null throughputs, oldest first.
func (r *repository) ThroughputHistory(ctx context.Context, workspaceID string, limit int) ([]float64, error) {
	var values []float64
	err := r.db.WithContext(ctx).
		Model(&metricsModel.Snapshot{}).
		Where("workspace_id = ? AND throughput IS NOT NULL", workspaceID).
		Order("day DESC").
		Limit(limit).
		Pluck("throughput", &values).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values, nil
}
