// Package model provides domain models and DTOs for the workspace module.
package model

// CreateWorkspaceRequest represents the request to create a workspace.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddIntegrationRequest represents the request to attach an integration to a workspace.
type AddIntegrationRequest struct {
	Type   string            `json:"type"   binding:"required"`
	Name   string            `json:"name"   binding:"required"`
	Config map[string]string `json:"config"`
}

// WorkspaceResponse represents a workspace in API responses.
type WorkspaceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// IntegrationResponse represents an integration in API responses.
type IntegrationResponse struct {
	ID           string `json:"id"`
	WorkspaceID  string `json:"workspace_id"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
}
