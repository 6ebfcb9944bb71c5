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

	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
)

type fakeSyncer struct {
	err       error
	workspace chan string
}

func newFakeSyncer(err error) *fakeSyncer {
	return &fakeSyncer{err: err, workspace: make(chan string, 1)}
}

func (f *fakeSyncer) SyncWorkspace(_ context.Context, workspaceID string) (*ingestionModel.WorkspaceResult, error) {
	f.workspace <- workspaceID
	if f.err != nil {
		return nil, f.err
	}
	return &ingestionModel.WorkspaceResult{WorkspaceID: workspaceID}, nil
}

func (f *fakeSyncer) SyncAll(_ context.Context) ([]ingestionModel.WorkspaceResult, error) {
	f.workspace <- "*"
	return nil, f.err
}

func TestJobService_EnqueueWorkspace(t *testing.T) {
	ctx := context.Background()
	jobs := new(mockJobRepository)
	workspaces := new(mockWorkspaceRepository)
	syncer := newFakeSyncer(nil)

	workspaceID := "ws-1"
	workspaces.On("GetWorkspace", ctx, workspaceID).Return(&workspaceModel.Workspace{ID: workspaceID}, nil)
	jobs.On("Create", ctx, &workspaceID).Return(&ingestionModel.SyncJob{ID: "job-1", Status: ingestionModel.JobStatusQueued}, nil)
	jobs.On("MarkRunning", mock.Anything, "job-1").Return(nil)
	jobs.On("Finish", mock.Anything, "job-1", ingestionModel.JobStatusSucceeded, "", mock.AnythingOfType("time.Time")).
		Return(nil)

	svc := NewJobService(jobs, workspaces, syncer, zap.NewNop().Sugar())
	resp, err := svc.Enqueue(ctx, workspaceID)

	require.NoError(t, err)
	assert.Equal(t, "job-1", resp.JobID)
	assert.Equal(t, "enqueued", resp.Status)
	require.NoError(t, svc.Wait(ctx))
	assert.Equal(t, workspaceID, <-syncer.workspace)
	jobs.AssertExpectations(t)
}

func TestJobService_EnqueueAllRecordsFailure(t *testing.T) {
	ctx := context.Background()
	jobs := new(mockJobRepository)
	workspaces := new(mockWorkspaceRepository)
	syncer := newFakeSyncer(errors.New("workspace ws-2: adapter down"))

	jobs.On("Create", ctx, (*string)(nil)).Return(&ingestionModel.SyncJob{ID: "job-2"}, nil)
	jobs.On("MarkRunning", mock.Anything, "job-2").Return(nil)
	jobs.On("Finish", mock.Anything, "job-2", ingestionModel.JobStatusFailed, "workspace ws-2: adapter down",
		mock.AnythingOfType("time.Time")).Return(nil)

	svc := NewJobService(jobs, workspaces, syncer, zap.NewNop().Sugar())
	_, err := svc.Enqueue(ctx, "")

	require.NoError(t, err)
	require.NoError(t, svc.Wait(ctx))
	assert.Equal(t, "*", <-syncer.workspace)
	workspaces.AssertNotCalled(t, "GetWorkspace", mock.Anything, mock.Anything)
	jobs.AssertExpectations(t)
}

func TestJobService_EnqueueUnknownWorkspace(t *testing.T) {
	ctx := context.Background()
	jobs := new(mockJobRepository)
	workspaces := new(mockWorkspaceRepository)
	workspaces.On("GetWorkspace", ctx, "missing").Return(nil, workspaceModel.ErrWorkspaceNotFound)

	svc := NewJobService(jobs, workspaces, newFakeSyncer(nil), zap.NewNop().Sugar())
	_, err := svc.Enqueue(ctx, "missing")

	assert.ErrorIs(t, err, workspaceModel.ErrWorkspaceNotFound)
	assert.True(t, IsNotFound(err))
	jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_EnqueueDetachedFromRequest(t *testing.T) {
	reqCtx, cancel := context.WithCancel(context.Background())
	jobs := new(mockJobRepository)
	syncer := newFakeSyncer(nil)

	jobs.On("Create", mock.Anything, (*string)(nil)).Return(&ingestionModel.SyncJob{ID: "job-3"}, nil)
	jobs.On("MarkRunning", mock.Anything, "job-3").Return(nil).Run(func(args mock.Arguments) {
		assert.NoError(t, args.Get(0).(context.Context).Err())
	})
	jobs.On("Finish", mock.Anything, "job-3", ingestionModel.JobStatusSucceeded, "", mock.Anything).Return(nil)

	svc := NewJobService(jobs, new(mockWorkspaceRepository), syncer, zap.NewNop().Sugar())
	_, err := svc.Enqueue(reqCtx, "")
	cancel()

	require.NoError(t, err)
	require.NoError(t, svc.Wait(context.Background()))
	jobs.AssertExpectations(t)
}

func TestJobService_WaitTimesOut(t *testing.T) {
	jobs := new(mockJobRepository)
	block := make(chan struct{})
	jobs.On("Create", mock.Anything, (*string)(nil)).Return(&ingestionModel.SyncJob{ID: "job-4"}, nil)
	jobs.On("MarkRunning", mock.Anything, "job-4").Return(nil).Run(func(mock.Arguments) { <-block })
	jobs.On("Finish", mock.Anything, "job-4", ingestionModel.JobStatusSucceeded, "", mock.Anything).Return(nil)

	svc := NewJobService(jobs, new(mockWorkspaceRepository), newFakeSyncer(nil), zap.NewNop().Sugar())
	_, err := svc.Enqueue(context.Background(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Wait(ctx), context.DeadlineExceeded)

	close(block)
	require.NoError(t, svc.Wait(context.Background()))
}

func TestJobService_GetJob(t *testing.T) {
	ctx := context.Background()
	jobs := new(mockJobRepository)
	finished := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	jobs.On("Get", ctx, "job-1").Return(&ingestionModel.SyncJob{
		ID:         "job-1",
		Status:     ingestionModel.JobStatusSucceeded,
		FinishedAt: &finished,
	}, nil)
	jobs.On("Get", ctx, "missing").Return(nil, ingestionModel.ErrJobNotFound)

	svc := NewJobService(jobs, new(mockWorkspaceRepository), newFakeSyncer(nil), zap.NewNop().Sugar())

	resp, err := svc.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "SUCCEEDED", resp.Status)
	assert.Equal(t, &finished, resp.FinishedAt)

	_, err = svc.GetJob(ctx, "missing")
	assert.True(t, IsNotFound(err))
}
