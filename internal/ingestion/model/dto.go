package model

import "time"

// EnqueueSyncRequest represents request to start a sync job.
// An empty WorkspaceID syncs every workspace; otherwise it must be a UUID.
type EnqueueSyncRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"omitempty,uuid"`
}

// EnqueueSyncResponse is returned once a job has been accepted.
type EnqueueSyncResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// JobResponse represents a sync job in API responses.
type JobResponse struct {
	ID          string     `json:"id"`
	WorkspaceID *string    `json:"workspace_id,omitempty"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// ToJobResponse converts a job to its API representation.
func ToJobResponse(j *SyncJob) JobResponse {
	return JobResponse{
		ID:          j.ID,
		WorkspaceID: j.WorkspaceID,
		Status:      string(j.Status),
		Error:       j.Error,
		CreatedAt:   j.CreatedAt,
		FinishedAt:  j.FinishedAt,
	}
}
