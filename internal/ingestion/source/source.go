// Package source defines how activity records are pulled from external systems.
package source

import (
	"context"
	"errors"
	"fmt"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	workspaceModel "github.com/Mouadistaa/project-pulse-ai/internal/workspace/model"
)

// ErrNoSource is returned when no source is registered for an integration type.
var ErrNoSource = errors.New("no source registered for integration type")

// RepoRef identifies the code repository the pull requests of a batch belong to.
type RepoRef struct {
	ExternalID string
	Name       string
	URL        string
}

// Batch is everything one integration produced in a single fetch.
type Batch struct {
	// Repo is set by code-hosting sources; PullRequests are attached to it.
	Repo         *RepoRef
	PullRequests []activityModel.PullRequest
	WorkItems    []activityModel.WorkItem
}

// Source fetches normalised activity records for one integration.
type Source interface {
	Fetch(ctx context.Context, integration workspaceModel.Integration) (*Batch, error)
}

// Registry maps integration types to the source that serves them.
type Registry map[workspaceModel.IntegrationType]Source

// Get returns the source registered for t.
func (r Registry) Get(t workspaceModel.IntegrationType) (Source, error) {
	src, ok := r[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, t)
	}
	return src, nil
}
