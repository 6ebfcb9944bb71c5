package model

import (
	"strings"
	"time"
)

// WorkItemType is the closed classification of a tracker card.
type WorkItemType string

// Work item types. Unknown or missing labels classify as WorkItemTypeTask.
const (
	WorkItemTypeBug     WorkItemType = "bug"
	WorkItemTypeFeature WorkItemType = "feature"
	WorkItemTypeTask    WorkItemType = "task"
)

// ParseWorkItemType classifies a raw type label case-insensitively.
func ParseWorkItemType(label string) WorkItemType {
	switch WorkItemType(strings.ToLower(label)) {
	case WorkItemTypeBug:
		return WorkItemTypeBug
	case WorkItemTypeFeature:
		return WorkItemTypeFeature
	default:
		return WorkItemTypeTask
	}
}

// closedStates is the vocabulary of lowercase state labels that mean resolved.
var closedStates = map[string]struct{}{
	"done":     {},
	"resolved": {},
	"closed":   {},
	"complete": {},
}

// IsClosedState reports whether a state label belongs to the closed vocabulary.
func IsClosedState(state string) bool {
	_, ok := closedStates[strings.ToLower(state)]
	return ok
}

// PullRequest is one external pull or merge request.
// Matches the pull_requests table schema.
type PullRequest struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid"                                                             json:"id"`
	WorkspaceID string    `gorm:"column:workspace_id;type:uuid;not null;uniqueIndex:uq_pull_requests_workspace_external"      json:"workspace_id"`
	RepoID      *string   `gorm:"column:repo_id;type:uuid"                                                                   json:"repo_id,omitempty"`
	ExternalID  string    `gorm:"column:external_id;type:varchar(255);not null;uniqueIndex:uq_pull_requests_workspace_external" json:"external_id"`
	Title       string    `gorm:"column:title;type:text;not null"                                                            json:"title"`
	OpenedAt    Timestamp `gorm:"column:opened_at;type:varchar(64)"                                                          json:"created_at,omitempty"`
	ClosedAt    Timestamp `gorm:"column:closed_at;type:varchar(64)"                                                          json:"closed_at,omitempty"`
	MergedAt    Timestamp `gorm:"column:merged_at;type:varchar(64)"                                                          json:"merged_at,omitempty"`
	Additions   int       `gorm:"column:additions;not null"                                                                  json:"additions"`
	Deletions   int       `gorm:"column:deletions;not null"                                                                  json:"deletions"`
	Comments    int       `gorm:"column:comments;not null"                                                                   json:"comments"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                                                                 json:"-"`
}

// TableName specifies the table name for GORM.
func (PullRequest) TableName() string {
	return "pull_requests"
}

// IsOpen reports whether the pull request has no closed timestamp.
// A present but malformed closed value still counts as closed.
func (p PullRequest) IsOpen() bool {
	return p.ClosedAt.IsZero()
}

// Size is the number of changed lines.
func (p PullRequest) Size() int {
	return p.Additions + p.Deletions
}

// WorkItem is one external tracker card.
// Matches the work_items table schema.
type WorkItem struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid"                                                          json:"id"`
	WorkspaceID string    `gorm:"column:workspace_id;type:uuid;not null;uniqueIndex:uq_work_items_workspace_external"      json:"workspace_id"`
	ExternalID  string    `gorm:"column:external_id;type:varchar(255);not null;uniqueIndex:uq_work_items_workspace_external" json:"external_id"`
	Name        string    `gorm:"column:name;type:text;not null"                                                          json:"name"`
	ListName    string    `gorm:"column:list_name;type:varchar(255);not null"                                             json:"list_name"`
	Status      string    `gorm:"column:status;type:varchar(255);not null"                                                json:"status,omitempty"`
	ResolvedAt  Timestamp `gorm:"column:resolved_at;type:varchar(64)"                                                     json:"resolution_date,omitempty"`
	ItemType    string    `gorm:"column:item_type;type:varchar(64);not null"                                              json:"item_type,omitempty"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                                                              json:"-"`
}

// TableName specifies the table name for GORM.
func (WorkItem) TableName() string {
	return "work_items"
}

// State is the raw status when present, otherwise the list label.
func (w WorkItem) State() string {
	if w.Status != "" {
		return w.Status
	}
	return w.ListName
}

// IsClosed reports whether the card's state is in the closed vocabulary.
func (w WorkItem) IsClosed() bool {
	return IsClosedState(w.State())
}

// Type classifies the card's type label.
func (w WorkItem) Type() WorkItemType {
	return ParseWorkItemType(w.ItemType)
}
