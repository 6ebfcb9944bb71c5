// Package service provides the metrics aggregator and snapshot queries.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
)

// Service defines the interface for metrics operations.
type Service interface {
	// ComputeDailySnapshot aggregates the workspace's records for day and upserts the snapshot.
	// A snapshot already written for a day before today is returned unchanged.
	ComputeDailySnapshot(ctx context.Context, workspaceID string, day time.Time) (*metricsModel.Snapshot, error)

	// ListSnapshots returns up to limit snapshots newest-first.
	ListSnapshots(ctx context.Context, workspaceID string, limit int) ([]metricsModel.SnapshotResponse, error)
}

type service struct {
	repo       repository.Repository
	activity   activityRepository.Repository
	windowDays int
	now        func() time.Time
	logger     *zap.SugaredLogger
}

// New creates a new metrics service instance.
func New(
	repo repository.Repository,
	activity activityRepository.Repository,
	windowDays int,
	logger *zap.SugaredLogger,
) Service {
	return NewWithClock(repo, activity, windowDays, time.Now, logger)
}

// NewWithClock is New with an explicit clock deciding which day is "today".
func NewWithClock(
	repo repository.Repository,
	activity activityRepository.Repository,
	windowDays int,
	now func() time.Time,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		activity:   activity,
		windowDays: windowDays,
		now:        now,
		logger:     logger,
	}
}

// ComputeDailySnapshot aggregates the workspace's records for day and upserts the snapshot.
func (s *service) ComputeDailySnapshot(
	ctx context.Context,
	workspaceID string,
	day time.Time,
) (*metricsModel.Snapshot, error) {
	if s.windowDays <= 0 {
		return nil, metricsModel.ErrInvalidWindow
	}

	day = activityModel.DayOf(day)
	if day.Before(activityModel.DayOf(s.now())) {
		existing, err := s.repo.Get(ctx, workspaceID, day)
		switch {
		case err == nil:
			s.logger.Debugw("snapshot already written for past day",
				"workspace_id", workspaceID,
				"day", day.Format("2006-01-02"),
			)
			return existing, nil
		case !errors.Is(err, metricsModel.ErrSnapshotNotFound):
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
	}

	prs, err := s.activity.ListPullRequests(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("load pull requests: %w", err)
	}
	items, err := s.activity.ListWorkItems(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("load work items: %w", err)
	}

	snapshot := Aggregate(day, s.windowDays, prs, items)
	snapshot.WorkspaceID = workspaceID
	snapshot.ComputedAt = s.now().UTC()

	if err := s.repo.Upsert(ctx, &snapshot); err != nil {
		return nil, fmt.Errorf("upsert snapshot: %w", err)
	}

	stored, err := s.repo.Get(ctx, workspaceID, day)
	if err != nil {
		return nil, fmt.Errorf("reload snapshot: %w", err)
	}

	s.logger.Infow("daily snapshot computed",
		"workspace_id", workspaceID,
		"day", day.Format("2006-01-02"),
		"pull_requests", len(prs),
		"work_items", len(items),
		"throughput", stored.Throughput,
		"wip", stored.WIP,
	)
	return stored, nil
}

// ListSnapshots returns up to limit snapshots newest-first.
func (s *service) ListSnapshots(
	ctx context.Context,
	workspaceID string,
	limit int,
) ([]metricsModel.SnapshotResponse, error) {
	snapshots, err := s.repo.Latest(ctx, workspaceID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]metricsModel.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		resp = append(resp, metricsModel.ToResponse(&snapshots[i]))
	}
	return resp, nil
}
