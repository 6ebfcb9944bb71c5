// Package repository provides data access layer for activity records.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
)

const upsertBatchSize = 200

// Repository defines the interface for activity record data access operations.
type Repository interface {
	// UpsertPullRequests inserts or overwrites pull requests keyed by (workspace, external id).
	UpsertPullRequests(ctx context.Context, workspaceID string, prs []activityModel.PullRequest) error

	// UpsertWorkItems inserts or overwrites work items keyed by (workspace, external id).
	UpsertWorkItems(ctx context.Context, workspaceID string, items []activityModel.WorkItem) error

	// ListPullRequests returns every pull request of a workspace.
	ListPullRequests(ctx context.Context, workspaceID string) ([]activityModel.PullRequest, error)

	// ListWorkItems returns every work item of a workspace.
	ListWorkItems(ctx context.Context, workspaceID string) ([]activityModel.WorkItem, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new activity repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// UpsertPullRequests inserts or overwrites pull requests keyed by (workspace, external id).
func (r *repository) UpsertPullRequests(
	ctx context.Context,
	workspaceID string,
	prs []activityModel.PullRequest,
) error {
	if len(prs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]activityModel.PullRequest, len(prs))
	for i, pr := range prs {
		if pr.ExternalID == "" {
			return fmt.Errorf("pull request %d: %w", i, activityModel.ErrMissingExternalID)
		}
		pr.ID = uuid.NewString()
		pr.WorkspaceID = workspaceID
		pr.UpdatedAt = now
		rows[i] = pr
	}
	rows = lastByExternalID(rows, func(pr activityModel.PullRequest) string { return pr.ExternalID })

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"repo_id", "title", "opened_at", "closed_at", "merged_at",
				"additions", "deletions", "comments", "updated_at",
			}),
		}).
		CreateInBatches(rows, upsertBatchSize).Error
}

// UpsertWorkItems inserts or overwrites work items keyed by (workspace, external id).
func (r *repository) UpsertWorkItems(
	ctx context.Context,
	workspaceID string,
	items []activityModel.WorkItem,
) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]activityModel.WorkItem, len(items))
	for i, item := range items {
		if item.ExternalID == "" {
			return fmt.Errorf("work item %d: %w", i, activityModel.ErrMissingExternalID)
		}
		item.ID = uuid.NewString()
		item.WorkspaceID = workspaceID
		item.UpdatedAt = now
		rows[i] = item
	}
	rows = lastByExternalID(rows, func(item activityModel.WorkItem) string { return item.ExternalID })

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "list_name", "status", "resolved_at", "item_type", "updated_at",
			}),
		}).
		CreateInBatches(rows, upsertBatchSize).Error
}

// lastByExternalID keeps one row per external id, the last one given, at the
// position the id first appeared. A single ON CONFLICT DO UPDATE statement
// cannot touch the same row twice.
func lastByExternalID[T any](rows []T, key func(T) string) []T {
	index := make(map[string]int, len(rows))
	out := rows[:0:0]
	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			out[i] = row
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out
}

// ListPullRequests returns every pull request of a workspace.
func (r *repository) ListPullRequests(ctx context.Context, workspaceID string) ([]activityModel.PullRequest, error) {
	var prs []activityModel.PullRequest
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("external_id ASC").
		Find(&prs).Error
	if err != nil {
		return nil, err
	}
	return prs, nil
}

// ListWorkItems returns every work item of a workspace.
func (r *repository) ListWorkItems(ctx context.Context, workspaceID string) ([]activityModel.WorkItem, error) {
	var items []activityModel.WorkItem
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("external_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
