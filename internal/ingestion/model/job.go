package model

import "time"

// JobStatus is the lifecycle state of a sync job.
type JobStatus string

// Sync job statuses.
const (
	JobStatusQueued    JobStatus = "QUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
)

// Terminal reports whether the job has finished.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// SyncJob records one asynchronous sync run.
// A nil WorkspaceID means every workspace.
// Matches the sync_jobs table schema.
type SyncJob struct {
	ID          string     `gorm:"primaryKey;column:id;type:uuid"         json:"id"`
	WorkspaceID *string    `gorm:"column:workspace_id;type:uuid"           json:"workspace_id"`
	Status      JobStatus  `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Error       string     `gorm:"column:error;not null;default:''"        json:"error"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"              json:"created_at"`
	FinishedAt  *time.Time `gorm:"column:finished_at"                      json:"finished_at"`
}

// TableName specifies the table name for GORM.
func (SyncJob) TableName() string {
	return "sync_jobs"
}

// WorkspaceResult summarises one workspace pass.
type WorkspaceResult struct {
	WorkspaceID  string
	Integrations int
	PullRequests int
	WorkItems    int
	Risks        int
	Err          error
}
