// Package repository provides data access layer for risk signals.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	riskModel "github.com/Mouadistaa/project-pulse-ai/internal/risk/model"
)

// Repository defines the interface for risk signal data access operations.
type Repository interface {
	// CreateFindings stores every signal and its alert in one transaction.
	CreateFindings(ctx context.Context, findings []riskModel.Finding) error

	// Latest returns up to limit signals of a workspace newest-first.
	Latest(ctx context.Context, workspaceID string, limit int) ([]riskModel.Signal, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new risk signal repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateFindings stores every signal and its alert in one transaction.
// Nothing is written if any insert fails.
func (r *repository) CreateFindings(ctx context.Context, findings []riskModel.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	for i := range findings {
		if t := findings[i].Signal.Type; !t.Valid() {
			return fmt.Errorf("%w: %q", riskModel.ErrInvalidRiskType, t)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range findings {
			f := &findings[i]
			if err := tx.Create(&f.Signal).Error; err != nil {
				return fmt.Errorf("insert %s signal: %w", f.Signal.Type, err)
			}

			f.Alert.SignalID = f.Signal.ID
			if err := tx.Create(&f.Alert).Error; err != nil {
				return fmt.Errorf("insert %s alert: %w", f.Signal.Type, err)
			}
		}
		return nil
	})
}

// Latest returns up to limit signals of a workspace newest-first.
func (r *repository) Latest(ctx context.Context, workspaceID string, limit int) ([]riskModel.Signal, error) {
	var signals []riskModel.Signal
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Order("type").
		Limit(limit).
		Find(&signals).Error
	if err != nil {
		return nil, err
	}
	return signals, nil
}

