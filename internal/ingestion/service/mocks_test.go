package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/source"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	metricsService "github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
	riskModel "github.com/Mouadistaa/project-pulse-ai/internal/risk/model"
	riskService "github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	workspaceRepository "github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
)

type mockWorkspaceRepository struct {
	mock.Mock
}

func (m *mockWorkspaceRepository) CreateWorkspace(ctx context.Context, name string) (*workspaceModel.Workspace, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Workspace), args.Error(1)
}

func (m *mockWorkspaceRepository) GetWorkspace(ctx context.Context, id string) (*workspaceModel.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Workspace), args.Error(1)
}

func (m *mockWorkspaceRepository) ListWorkspaces(ctx context.Context) ([]workspaceModel.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspaceModel.Workspace), args.Error(1)
}

func (m *mockWorkspaceRepository) CreateIntegration(ctx context.Context, integration *workspaceModel.Integration) error {
	args := m.Called(ctx, integration)
	return args.Error(0)
}

func (m *mockWorkspaceRepository) ListActiveIntegrations(
	ctx context.Context,
	workspaceID string,
) ([]workspaceModel.Integration, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspaceModel.Integration), args.Error(1)
}

func (m *mockWorkspaceRepository) TouchIntegration(ctx context.Context, integrationID string, at time.Time) error {
	args := m.Called(ctx, integrationID, at)
	return args.Error(0)
}

func (m *mockWorkspaceRepository) GetOrCreateRepo(
	ctx context.Context,
	workspaceID, externalID, name, url string,
) (*workspaceModel.Repo, error) {
	args := m.Called(ctx, workspaceID, externalID, name, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Repo), args.Error(1)
}

var _ workspaceRepository.Repository = (*mockWorkspaceRepository)(nil)

type mockActivityRepository struct {
	mock.Mock
}

func (m *mockActivityRepository) UpsertPullRequests(
	ctx context.Context,
	workspaceID string,
	prs []activityModel.PullRequest,
) error {
	args := m.Called(ctx, workspaceID, prs)
	return args.Error(0)
}

func (m *mockActivityRepository) UpsertWorkItems(
	ctx context.Context,
	workspaceID string,
	items []activityModel.WorkItem,
) error {
	args := m.Called(ctx, workspaceID, items)
	return args.Error(0)
}

func (m *mockActivityRepository) ListPullRequests(
	ctx context.Context,
	workspaceID string,
) ([]activityModel.PullRequest, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]activityModel.PullRequest), args.Error(1)
}

func (m *mockActivityRepository) ListWorkItems(ctx context.Context, workspaceID string) ([]activityModel.WorkItem, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]activityModel.WorkItem), args.Error(1)
}

var _ activityRepository.Repository = (*mockActivityRepository)(nil)

type mockMetricsService struct {
	mock.Mock
}

func (m *mockMetricsService) ComputeDailySnapshot(
	ctx context.Context,
	workspaceID string,
	day time.Time,
) (*metricsModel.Snapshot, error) {
	args := m.Called(ctx, workspaceID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metricsModel.Snapshot), args.Error(1)
}

func (m *mockMetricsService) ListSnapshots(
	ctx context.Context,
	workspaceID string,
	limit int,
) ([]metricsModel.SnapshotResponse, error) {
	args := m.Called(ctx, workspaceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]metricsModel.SnapshotResponse), args.Error(1)
}

var _ metricsService.Service = (*mockMetricsService)(nil)

type mockRiskService struct {
	mock.Mock
}

func (m *mockRiskService) DetectRisks(ctx context.Context, workspaceID string) ([]riskModel.Finding, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riskModel.Finding), args.Error(1)
}

func (m *mockRiskService) ListSignals(
	ctx context.Context,
	workspaceID string,
	limit int,
) ([]riskModel.SignalResponse, error) {
	args := m.Called(ctx, workspaceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riskModel.SignalResponse), args.Error(1)
}

var _ riskService.Service = (*mockRiskService)(nil)

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) Create(ctx context.Context, workspaceID *string) (*ingestionModel.SyncJob, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ingestionModel.SyncJob), args.Error(1)
}

func (m *mockJobRepository) Get(ctx context.Context, id string) (*ingestionModel.SyncJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ingestionModel.SyncJob), args.Error(1)
}

func (m *mockJobRepository) MarkRunning(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockJobRepository) Finish(
	ctx context.Context,
	id string,
	status ingestionModel.JobStatus,
	errText string,
	at time.Time,
) error {
	args := m.Called(ctx, id, status, errText, at)
	return args.Error(0)
}

var _ repository.Repository = (*mockJobRepository)(nil)

// scriptedSource fails the first failures calls, then returns batch.
type scriptedSource struct {
	mu       sync.Mutex
	failures int
	err      error
	batch    *source.Batch
	calls    int
}

func (s *scriptedSource) Fetch(_ context.Context, _ workspaceModel.Integration) (*source.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return nil, s.err
	}
	return s.batch, nil
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
