// Package repository provides data access layer for alerts.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
)

// Repository defines the interface for alert data access operations.
type Repository interface {
	// List returns up to limit alerts of a workspace newest-first, optionally filtered by status.
	List(ctx context.Context, workspaceID string, status alertModel.Status, limit int) ([]alertModel.Alert, error)

	// Transition moves an alert to status to if it is currently in one of to's source statuses.
	Transition(ctx context.Context, id string, to alertModel.Status, at time.Time) (*alertModel.Alert, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new alert repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns up to limit alerts of a workspace newest-first.
func (r *repository) List(
	ctx context.Context,
	workspaceID string,
	status alertModel.Status,
	limit int,
) ([]alertModel.Alert, error) {
	query := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var alerts []alertModel.Alert
	err := query.
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// Transition performs a compare-and-set on the alert status inside a transaction.
func (r *repository) Transition(
	ctx context.Context,
	id string,
	to alertModel.Status,
	at time.Time,
) (*alertModel.Alert, error) {
	var updated *alertModel.Alert
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&alertModel.Alert{}).
			Where("id = ? AND status IN ?", id, to.Sources()).
			Updates(map[string]interface{}{
				"status":     to,
				"updated_at": at,
			})
		if result.Error != nil {
			return result.Error
		}

		alert, err := get(tx, id)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return alertModel.ErrInvalidTransition
		}
		updated = alert
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func get(db *gorm.DB, id string) (*alertModel.Alert, error) {
	var alert alertModel.Alert
	err := db.Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, alertModel.ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}
