package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/repository"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	workspaceRepository "github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
)

// Syncer is the part of the orchestrator a job runs.
type Syncer interface {
	SyncWorkspace(ctx context.Context, workspaceID string) (*ingestionModel.WorkspaceResult, error)
	SyncAll(ctx context.Context) ([]ingestionModel.WorkspaceResult, error)
}

var _ Syncer = (*Orchestrator)(nil)

// JobService defines the interface for asynchronous sync jobs.
type JobService interface {
	// Enqueue records a QUEUED job and starts it in the background.
	// An empty workspaceID syncs every workspace.
	Enqueue(ctx context.Context, workspaceID string) (*ingestionModel.EnqueueSyncResponse, error)

	// GetJob returns the current state of a job.
	GetJob(ctx context.Context, id string) (*ingestionModel.JobResponse, error)

	// Wait blocks until every started job has finished or ctx is done.
	Wait(ctx context.Context) error
}

type jobService struct {
	repo       repository.Repository
	workspaces workspaceRepository.Repository
	syncer     Syncer
	wg         sync.WaitGroup
	now        func() time.Time
	logger     *zap.SugaredLogger
}

// NewJobService creates a new sync job service instance.
func NewJobService(
	repo repository.Repository,
	workspaces workspaceRepository.Repository,
	syncer Syncer,
	logger *zap.SugaredLogger,
) JobService {
	return &jobService{
		repo:       repo,
		workspaces: workspaces,
		syncer:     syncer,
		now:        time.Now,
		logger:     logger,
	}
}

// Enqueue records a QUEUED job and starts it in the background.
func (s *jobService) Enqueue(ctx context.Context, workspaceID string) (*ingestionModel.EnqueueSyncResponse, error) {
	var target *string
	if workspaceID != "" {
		if _, err := s.workspaces.GetWorkspace(ctx, workspaceID); err != nil {
			return nil, err
		}
		target = &workspaceID
	}

	job, err := s.repo.Create(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.Infow("sync job enqueued", "job_id", job.ID, "workspace_id", workspaceID)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(context.WithoutCancel(ctx), job.ID, workspaceID)
	}()

	return &ingestionModel.EnqueueSyncResponse{JobID: job.ID, Status: "enqueued"}, nil
}

func (s *jobService) run(ctx context.Context, jobID, workspaceID string) {
	if err := s.repo.MarkRunning(ctx, jobID); err != nil {
		s.logger.Errorw("failed to start sync job", "job_id", jobID, "error", err)
		return
	}

	var err error
	if workspaceID != "" {
		_, err = s.syncer.SyncWorkspace(ctx, workspaceID)
	} else {
		_, err = s.syncer.SyncAll(ctx)
	}

	status, errText := ingestionModel.JobStatusSucceeded, ""
	if err != nil {
		status, errText = ingestionModel.JobStatusFailed, err.Error()
		s.logger.Errorw("sync job failed", "job_id", jobID, "error", err)
	}

	if err := s.repo.Finish(ctx, jobID, status, errText, s.now().UTC()); err != nil {
		s.logger.Errorw("failed to record sync job result", "job_id", jobID, "error", err)
		return
	}
	s.logger.Infow("sync job finished", "job_id", jobID, "status", status)
}

// GetJob returns the current state of a job.
func (s *jobService) GetJob(ctx context.Context, id string) (*ingestionModel.JobResponse, error) {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ingestionModel.ToJobResponse(job)
	return &resp, nil
}

// Wait blocks until every started job has finished or ctx is done.
func (s *jobService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsNotFound reports whether err means the job or its workspace does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ingestionModel.ErrJobNotFound) || errors.Is(err, workspaceModel.ErrWorkspaceNotFound)
}
