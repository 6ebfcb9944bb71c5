// Package service provides the risk detector.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	riskModel "github.com/Mouadistaa/project-pulse-ai/internal/risk/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/repository"
)

// Service defines the interface for risk detection.
type Service interface {
	// DetectRisks evaluates the rules against the two latest snapshots of a workspace
	// and stores one signal and one NEW alert per fired rule.
	// Signals are appended on every call; earlier firings are not deduplicated.
	DetectRisks(ctx context.Context, workspaceID string) ([]riskModel.Finding, error)

	// ListSignals returns up to limit signals newest-first.
	ListSignals(ctx context.Context, workspaceID string, limit int) ([]riskModel.SignalResponse, error)
}

type service struct {
	repo    repository.Repository
	metrics metricsRepository.Repository
	now     func() time.Time
	logger  *zap.SugaredLogger
}

// New creates a new risk service instance.
func New(repo repository.Repository, metrics metricsRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
		logger:  logger,
	}
}

// DetectRisks evaluates the rules against the two latest snapshots of a workspace.
func (s *service) DetectRisks(ctx context.Context, workspaceID string) ([]riskModel.Finding, error) {
	snapshots, err := s.metrics.Latest(ctx, workspaceID, 2)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		s.logger.Debugw("no snapshots to evaluate", "workspace_id", workspaceID)
		return nil, nil
	}

	today := &snapshots[0]
	var previous *metricsModel.Snapshot
	if len(snapshots) > 1 {
		previous = &snapshots[1]
	}

	detections := Evaluate(today, previous)
	findings := make([]riskModel.Finding, 0, len(detections))
	for _, d := range detections {
		now := s.now().UTC()
		finding := riskModel.Finding{
			Signal: riskModel.Signal{
				ID:          uuid.NewString(),
				WorkspaceID: workspaceID,
				Type:        d.Type,
				Score:       d.Score,
				Explanation: d.Explanation,
				CreatedAt:   now,
			},
			Alert: alertModel.Alert{
				ID:          uuid.NewString(),
				WorkspaceID: workspaceID,
				Severity:    alertModel.SeverityForScore(d.Score),
				Title:       alertModel.Title(string(d.Type)),
				History:     d.Explanation,
				Status:      alertModel.StatusNew,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		}

		findings = append(findings, finding)
	}

	if len(findings) == 0 {
		return findings, nil
	}
	if err := s.repo.CreateFindings(ctx, findings); err != nil {
		return nil, fmt.Errorf("store findings: %w", err)
	}

	for _, f := range findings {
		s.logger.Infow("risk detected",
			"workspace_id", workspaceID,
			"type", f.Signal.Type,
			"score", f.Signal.Score,
			"severity", f.Alert.Severity,
		)
	}
	return findings, nil
}

// ListSignals returns up to limit signals newest-first.
func (s *service) ListSignals(
	ctx context.Context,
	workspaceID string,
	limit int,
) ([]riskModel.SignalResponse, error) {
	signals, err := s.repo.Latest(ctx, workspaceID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]riskModel.SignalResponse, 0, len(signals))
	for i := range signals {
		resp = append(resp, riskModel.ToResponse(&signals[i]))
	}
	return resp, nil
}
