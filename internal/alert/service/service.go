// Package service provides business logic for alert operations.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/alert/repository"
)

// Service defines the interface for alert business logic.
type Service interface {
	// List returns up to limit alerts of a workspace newest-first.
	// An empty status returns alerts in every status.
	List(ctx context.Context, workspaceID, status string, limit int) ([]alertModel.AlertResponse, error)

	// Acknowledge moves a NEW alert to ACK.
	Acknowledge(ctx context.Context, id string) (*alertModel.AlertResponse, error)

	// Resolve moves a NEW or ACK alert to RESOLVED.
	Resolve(ctx context.Context, id string) (*alertModel.AlertResponse, error)
}

type service struct {
	repo   repository.Repository
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a new alert service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// List returns up to limit alerts of a workspace newest-first.
func (s *service) List(
	ctx context.Context,
	workspaceID, status string,
	limit int,
) ([]alertModel.AlertResponse, error) {
	var filter alertModel.Status
	if status != "" {
		parsed, err := alertModel.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	alerts, err := s.repo.List(ctx, workspaceID, filter, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]alertModel.AlertResponse, 0, len(alerts))
	for i := range alerts {
		resp = append(resp, alertModel.ToResponse(&alerts[i]))
	}
	return resp, nil
}

// Acknowledge moves a NEW alert to ACK.
func (s *service) Acknowledge(ctx context.Context, id string) (*alertModel.AlertResponse, error) {
	return s.transition(ctx, id, alertModel.StatusAck)
}

// Resolve moves a NEW or ACK alert to RESOLVED.
func (s *service) Resolve(ctx context.Context, id string) (*alertModel.AlertResponse, error) {
	return s.transition(ctx, id, alertModel.StatusResolved)
}

func (s *service) transition(
	ctx context.Context,
	id string,
	to alertModel.Status,
) (*alertModel.AlertResponse, error) {
	alert, err := s.repo.Transition(ctx, id, to, s.now().UTC())
	if err != nil {
		if errors.Is(err, alertModel.ErrInvalidTransition) {
			s.logger.Warnw("rejected alert transition", "alert_id", id, "to", to)
		}
		return nil, err
	}

	s.logger.Infow("alert status changed",
		"alert_id", alert.ID,
		"workspace_id", alert.WorkspaceID,
		"status", alert.Status,
	)

	resp := alertModel.ToResponse(alert)
	return &resp, nil
}
