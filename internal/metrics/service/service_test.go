package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Upsert(ctx context.Context, snapshot *metricsModel.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *mockRepository) Get(ctx context.Context, workspaceID string, day time.Time) (*metricsModel.Snapshot, error) {
	args := m.Called(ctx, workspaceID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metricsModel.Snapshot), args.Error(1)
}

func (m *mockRepository) Latest(ctx context.Context, workspaceID string, limit int) ([]metricsModel.Snapshot, error) {
	args := m.Called(ctx, workspaceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]metricsModel.Snapshot), args.Error(1)
}

func (m *mockRepository) ThroughputHistory(ctx context.Context, workspaceID string, limit int) ([]float64, error) {
	args := m.Called(ctx, workspaceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

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

var (
	testToday = time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC)
	testDay   = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
)

func newTestService(repo *mockRepository, activity *mockActivityRepository, windowDays int) Service {
	return NewWithClock(repo, activity, windowDays, func() time.Time { return testToday }, zap.NewNop().Sugar())
}

func TestService_ComputeDailySnapshot(t *testing.T) {
	ctx := context.Background()
	prs := []activityModel.PullRequest{{
		ExternalID: "pr-1",
		OpenedAt:   "2024-01-01T09:00",
		MergedAt:   "2024-01-02T09:00",
		Additions:  100,
		Deletions:  50,
	}}

	t.Run("today is aggregated and upserted", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)
		activity.On("ListPullRequests", ctx, "ws-1").Return(prs, nil)
		activity.On("ListWorkItems", ctx, "ws-1").Return([]activityModel.WorkItem{}, nil)

		var written *metricsModel.Snapshot
		repo.On("Upsert", ctx, mock.AnythingOfType("*model.Snapshot")).
			Run(func(args mock.Arguments) { written = args.Get(1).(*metricsModel.Snapshot) }).
			Return(nil)
		stored := &metricsModel.Snapshot{ID: "snap-1", WorkspaceID: "ws-1", Day: testDay}
		repo.On("Get", ctx, "ws-1", testDay).Return(stored, nil)

		got, err := newTestService(repo, activity, 7).ComputeDailySnapshot(ctx, "ws-1", testToday)

		require.NoError(t, err)
		assert.Same(t, stored, got)
		require.NotNil(t, written)
		assert.Equal(t, "ws-1", written.WorkspaceID)
		assert.Equal(t, testDay, written.Day)
		assert.InDelta(t, 24.0, *written.LeadTimeP50, 1e-9)
		assert.InDelta(t, 1.0/7.0, *written.Throughput, 1e-9)
		assert.Equal(t, testToday, written.ComputedAt)
	})

	t.Run("past day with existing snapshot is left untouched", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)
		past := testDay.AddDate(0, 0, -1)
		existing := &metricsModel.Snapshot{ID: "snap-1", WorkspaceID: "ws-1", Day: past}
		repo.On("Get", ctx, "ws-1", past).Return(existing, nil)

		got, err := newTestService(repo, activity, 7).ComputeDailySnapshot(ctx, "ws-1", past.Add(10*time.Hour))

		require.NoError(t, err)
		assert.Same(t, existing, got)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		activity.AssertNotCalled(t, "ListPullRequests", mock.Anything, mock.Anything)
	})

	t.Run("past day without snapshot is computed", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)
		past := testDay.AddDate(0, 0, -3)
		stored := &metricsModel.Snapshot{ID: "snap-2", WorkspaceID: "ws-1", Day: past}
		repo.On("Get", ctx, "ws-1", past).Return(nil, metricsModel.ErrSnapshotNotFound).Once()
		repo.On("Get", ctx, "ws-1", past).Return(stored, nil).Once()
		repo.On("Upsert", ctx, mock.AnythingOfType("*model.Snapshot")).Return(nil)
		activity.On("ListPullRequests", ctx, "ws-1").Return([]activityModel.PullRequest{}, nil)
		activity.On("ListWorkItems", ctx, "ws-1").Return([]activityModel.WorkItem{}, nil)

		got, err := newTestService(repo, activity, 7).ComputeDailySnapshot(ctx, "ws-1", past)

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("invalid window", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)

		_, err := newTestService(repo, activity, 0).ComputeDailySnapshot(ctx, "ws-1", testToday)

		assert.ErrorIs(t, err, metricsModel.ErrInvalidWindow)
	})

	t.Run("activity error is wrapped", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)
		dbErr := errors.New("connection reset")
		activity.On("ListPullRequests", ctx, "ws-1").Return(nil, dbErr)

		_, err := newTestService(repo, activity, 7).ComputeDailySnapshot(ctx, "ws-1", testToday)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "load pull requests")
	})

	t.Run("upsert error is wrapped", func(t *testing.T) {
		repo := new(mockRepository)
		activity := new(mockActivityRepository)
		dbErr := errors.New("disk full")
		activity.On("ListPullRequests", ctx, "ws-1").Return([]activityModel.PullRequest{}, nil)
		activity.On("ListWorkItems", ctx, "ws-1").Return([]activityModel.WorkItem{}, nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*model.Snapshot")).Return(dbErr)

		_, err := newTestService(repo, activity, 7).ComputeDailySnapshot(ctx, "ws-1", testToday)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_ListSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	activity := new(mockActivityRepository)
	repo.On("Latest", ctx, "ws-1", 2).Return([]metricsModel.Snapshot{
		{Day: testDay, Throughput: metricsModel.Float(1)},
		{Day: testDay.AddDate(0, 0, -1), Throughput: metricsModel.Float(2)},
	}, nil)

	got, err := newTestService(repo, activity, 7).ListSnapshots(ctx, "ws-1", 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-02", got[0].Day)
	assert.Equal(t, "2024-01-01", got[1].Day)
	assert.Equal(t, 2.0, *got[1].Throughput)
}
