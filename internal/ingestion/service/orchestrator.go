// Package service runs sync passes and tracks them as jobs.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/source"
	"github.com/Mouadistaa/project-pulse-ai/internal/lock"
	metricsService "github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
	riskService "github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	workspaceRepository "github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
	"github.com/Mouadistaa/project-pulse-ai/pkg/retry"
)

// Dependencies are the collaborators of an Orchestrator.
type Dependencies struct {
	Workspaces workspaceRepository.Repository
	Activity   activityRepository.Repository
	Metrics    metricsService.Service
	Risks      riskService.Service
	Sources    source.Registry
	Locker     lock.Locker
}

// Orchestrator pulls activity for workspaces and refreshes their analytics.
type Orchestrator struct {
	deps        Dependencies
	retry       retry.Config
	lockTTL     time.Duration
	concurrency int
	now         func() time.Time
	logger      *zap.SugaredLogger
}

// NewOrchestrator creates a sync orchestrator.
func NewOrchestrator(deps Dependencies, cfg appConfig.SyncConfig, logger *zap.SugaredLogger) *Orchestrator {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Orchestrator{
		deps:        deps,
		retry:       cfg.RetryPolicy(),
		lockTTL:     cfg.LockTTL,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

// SyncWorkspace runs one pass for a workspace: fetch every active integration,
// store the records, then compute today's snapshot and detect risks.
// Passes for the same workspace never overlap; a concurrent call gets ErrWorkspaceBusy.
// An integration that still fails after retries aborts the pass before any
// snapshot is written; records stored by earlier integrations are kept.
func (o *Orchestrator) SyncWorkspace(ctx context.Context, workspaceID string) (*ingestionModel.WorkspaceResult, error) {
	release, err := o.deps.Locker.Acquire(ctx, "workspace:"+workspaceID, o.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, fmt.Errorf("%w: %s", ingestionModel.ErrWorkspaceBusy, workspaceID)
		}
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	defer release()

	started := o.now()
	result := &ingestionModel.WorkspaceResult{WorkspaceID: workspaceID}

	integrations, err := o.deps.Workspaces.ListActiveIntegrations(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}

	for _, integration := range integrations {
		prs, items, err := o.syncIntegration(ctx, integration)
		if err != nil {
			if errors.Is(err, source.ErrNoSource) {
				o.logger.Warnw("skipping integration without source",
					"workspace_id", workspaceID,
					"integration_id", integration.ID,
					"type", integration.Type,
				)
				continue
			}
			return nil, fmt.Errorf("sync integration %s (%s): %w", integration.Name, integration.Type, err)
		}
		result.Integrations++
		result.PullRequests += prs
		result.WorkItems += items
	}

	if _, err := o.deps.Metrics.ComputeDailySnapshot(ctx, workspaceID, o.now()); err != nil {
		return nil, fmt.Errorf("compute snapshot: %w", err)
	}

	findings, err := o.deps.Risks.DetectRisks(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("detect risks: %w", err)
	}
	result.Risks = len(findings)

	o.logger.Infow("workspace synced",
		"workspace_id", workspaceID,
		"integrations", result.Integrations,
		"pull_requests", result.PullRequests,
		"work_items", result.WorkItems,
		"risks", result.Risks,
		"duration", o.now().Sub(started),
	)
	return result, nil
}

func (o *Orchestrator) syncIntegration(
	ctx context.Context,
	integration workspaceModel.Integration,
) (prs, items int, err error) {
	src, err := o.deps.Sources.Get(integration.Type)
	if err != nil {
		return 0, 0, err
	}

	policy := o.retry
	policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		o.logger.Warnw("integration fetch failed, retrying",
			"integration_id", integration.ID,
			"type", integration.Type,
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"delay", delay,
			"error", err,
		)
	}

	batch, err := retry.DoWithResult(ctx, policy, func() (*source.Batch, error) {
		return src.Fetch(ctx, integration)
	})
	if err != nil {
		return 0, 0, err
	}

	if batch.Repo != nil && len(batch.PullRequests) > 0 {
		repo, err := o.deps.Workspaces.GetOrCreateRepo(ctx,
			integration.WorkspaceID, batch.Repo.ExternalID, batch.Repo.Name, batch.Repo.URL)
		if err != nil {
			return 0, 0, fmt.Errorf("resolve repo: %w", err)
		}
		for i := range batch.PullRequests {
			batch.PullRequests[i].RepoID = &repo.ID
		}
	}

	if err := o.deps.Activity.UpsertPullRequests(ctx, integration.WorkspaceID, batch.PullRequests); err != nil {
		return 0, 0, fmt.Errorf("store pull requests: %w", err)
	}
	if err := o.deps.Activity.UpsertWorkItems(ctx, integration.WorkspaceID, batch.WorkItems); err != nil {
		return 0, 0, fmt.Errorf("store work items: %w", err)
	}
	if err := o.deps.Workspaces.TouchIntegration(ctx, integration.ID, o.now().UTC()); err != nil {
		return 0, 0, fmt.Errorf("touch integration: %w", err)
	}

	return len(batch.PullRequests), len(batch.WorkItems), nil
}

// SyncAll runs a pass for every workspace, at most Concurrency at a time.
// A failing workspace does not stop the others; every failure is reported
// in its result and joined into the returned error.
func (o *Orchestrator) SyncAll(ctx context.Context) ([]ingestionModel.WorkspaceResult, error) {
	workspaces, err := o.deps.Workspaces.ListWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	results := make([]ingestionModel.WorkspaceResult, len(workspaces))
	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i, ws := range workspaces {
		g.Go(func() error {
			res, err := o.SyncWorkspace(ctx, ws.ID)
			if err != nil {
				o.logger.Errorw("workspace sync failed", "workspace_id", ws.ID, "error", err)
				results[i] = ingestionModel.WorkspaceResult{WorkspaceID: ws.ID, Err: err}
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("workspace %s: %w", res.WorkspaceID, res.Err))
		}
	}
	return results, errors.Join(errs...)
}
