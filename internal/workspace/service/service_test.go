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

	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateWorkspace(ctx context.Context, name string) (*workspaceModel.Workspace, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Workspace), args.Error(1)
}

func (m *mockRepository) GetWorkspace(ctx context.Context, id string) (*workspaceModel.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Workspace), args.Error(1)
}

func (m *mockRepository) ListWorkspaces(ctx context.Context) ([]workspaceModel.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspaceModel.Workspace), args.Error(1)
}

func (m *mockRepository) CreateIntegration(ctx context.Context, integration *workspaceModel.Integration) error {
	args := m.Called(ctx, integration)
	return args.Error(0)
}

func (m *mockRepository) ListActiveIntegrations(
	ctx context.Context,
	workspaceID string,
) ([]workspaceModel.Integration, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspaceModel.Integration), args.Error(1)
}

func (m *mockRepository) TouchIntegration(ctx context.Context, integrationID string, at time.Time) error {
	args := m.Called(ctx, integrationID, at)
	return args.Error(0)
}

func (m *mockRepository) GetOrCreateRepo(
	ctx context.Context,
	workspaceID, externalID, name, url string,
) (*workspaceModel.Repo, error) {
	args := m.Called(ctx, workspaceID, externalID, name, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspaceModel.Repo), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_CreateWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		created := &workspaceModel.Workspace{
			ID:        "ws-1",
			Name:      "platform",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		repo.On("CreateWorkspace", ctx, "platform").Return(created, nil)

		resp, err := svc.CreateWorkspace(ctx, &workspaceModel.CreateWorkspaceRequest{Name: "  platform "})
		require.NoError(t, err)
		assert.Equal(t, "ws-1", resp.ID)
		assert.Equal(t, "2024-01-01T00:00:00Z", resp.CreatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.CreateWorkspace(ctx, &workspaceModel.CreateWorkspaceRequest{Name: "   "})
		assert.ErrorIs(t, err, workspaceModel.ErrInvalidWorkspaceName)
		repo.AssertNotCalled(t, "CreateWorkspace", mock.Anything, mock.Anything)
	})
}

func TestService_ListWorkspaces(t *testing.T) {
	ctx := context.Background()

	t.Run("maps workspaces", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("ListWorkspaces", ctx).Return([]workspaceModel.Workspace{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
		}, nil)

		resp, err := svc.ListWorkspaces(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "b", resp[1].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("ListWorkspaces", ctx).Return(nil, errors.New("db down"))

		_, err := svc.ListWorkspaces(ctx)
		assert.Error(t, err)
	})
}

func TestService_AddIntegration(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("GetWorkspace", ctx, "ws-1").Return(&workspaceModel.Workspace{ID: "ws-1"}, nil)
		repo.On("CreateIntegration", ctx, mock.MatchedBy(func(i *workspaceModel.Integration) bool {
			return i.Type == workspaceModel.IntegrationTypeTrello &&
				i.Status == workspaceModel.IntegrationStatusActive &&
				i.Config["board_id"] == "b-1"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*workspaceModel.Integration).ID = "int-1"
		}).Return(nil)

		resp, err := svc.AddIntegration(ctx, "ws-1", &workspaceModel.AddIntegrationRequest{
			Type:   "trello",
			Name:   "Roadmap",
			Config: map[string]string{"board_id": "b-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "int-1", resp.ID)
		assert.Equal(t, "TRELLO", resp.Type)
		assert.Equal(t, "ACTIVE", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("invalid type", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.AddIntegration(ctx, "ws-1", &workspaceModel.AddIntegrationRequest{Type: "jira", Name: "x"})
		assert.ErrorIs(t, err, workspaceModel.ErrInvalidIntegrationType)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		_, err := svc.AddIntegration(ctx, "ws-1", &workspaceModel.AddIntegrationRequest{Type: "github", Name: " "})
		assert.ErrorIs(t, err, workspaceModel.ErrInvalidIntegrationName)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		repo.On("GetWorkspace", ctx, "nope").Return(nil, workspaceModel.ErrWorkspaceNotFound)

		_, err := svc.AddIntegration(ctx, "nope", &workspaceModel.AddIntegrationRequest{Type: "github", Name: "api"})
		assert.ErrorIs(t, err, workspaceModel.ErrWorkspaceNotFound)
		repo.AssertNotCalled(t, "CreateIntegration", mock.Anything, mock.Anything)
	})
}

func TestToIntegrationResponse(t *testing.T) {
	synced := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	resp := ToIntegrationResponse(&workspaceModel.Integration{
		ID:           "i",
		Type:         workspaceModel.IntegrationTypeGitHub,
		Status:       workspaceModel.IntegrationStatusActive,
		LastSyncedAt: &synced,
	})
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.LastSyncedAt)
}
