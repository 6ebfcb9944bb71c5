// Package service provides the forecast simulator and its workspace-level entry point.
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	forecastModel "github.com/Mouadistaa/project-pulse-ai/internal/forecast/model"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
)

// Service defines the interface for forecast operations.
type Service interface {
	// Forecast estimates the probability that backlog items are delivered by target,
	// using the workspace's recent daily throughput. No history yields 0.
	Forecast(ctx context.Context, workspaceID string, target time.Time, backlog int) (*forecastModel.ForecastResponse, error)
}

type service struct {
	metrics     metricsRepository.Repository
	historyDays int
	simulations int
	newRand     func() *rand.Rand
	now         func() time.Time
	logger      *zap.SugaredLogger
}

// Option customises the forecast service.
type Option func(*service)

// WithRand makes every forecast draw from a source produced by newRand.
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *service) {
		s.newRand = newRand
	}
}

// WithClock overrides the clock that defines "today".
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new forecast service instance.
func New(
	metrics metricsRepository.Repository,
	cfg appConfig.EngineConfig,
	logger *zap.SugaredLogger,
	opts ...Option,
) Service {
	s := &service{
		metrics:     metrics,
		historyDays: cfg.ForecastHistoryDays,
		simulations: cfg.ForecastSimulations,
		newRand: func() *rand.Rand {
			//nolint:gosec // simulation does not need a cryptographic source
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Forecast estimates the probability that backlog items are delivered by target.
func (s *service) Forecast(
	ctx context.Context,
	workspaceID string,
	target time.Time,
	backlog int,
) (*forecastModel.ForecastResponse, error) {
	if backlog < 0 {
		return nil, fmt.Errorf("%w: %d", forecastModel.ErrInvalidBacklogSize, backlog)
	}

	history, err := s.metrics.ThroughputHistory(ctx, workspaceID, s.historyDays)
	if err != nil {
		return nil, fmt.Errorf("load throughput history: %w", err)
	}

	target = activityModel.DayOf(target)
	probability := NewSimulator(s.newRand()).Probability(history, backlog, target, s.now(), s.simulations)

	s.logger.Debugw("forecast computed",
		"workspace_id", workspaceID,
		"target_date", target.Format(forecastModel.DateLayout),
		"backlog_size", backlog,
		"history_days", len(history),
		"probability", probability,
	)

	return &forecastModel.ForecastResponse{
		TargetDate:  target.Format(forecastModel.DateLayout),
		BacklogSize: backlog,
		Probability: probability,
		HistoryDays: len(history),
		Simulations: s.simulations,
	}, nil
}
