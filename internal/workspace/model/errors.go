package model

import "errors"

var (
	// ErrWorkspaceNotFound indicates that the requested workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrInvalidWorkspaceName indicates that the workspace name is empty or too long.
	ErrInvalidWorkspaceName = errors.New("workspace name must be between 1 and 255 characters")
	// ErrInvalidIntegrationType indicates an integration type outside GITHUB and TRELLO.
	ErrInvalidIntegrationType = errors.New("invalid integration type")
	// ErrInvalidIntegrationName indicates that the integration name is empty.
	ErrInvalidIntegrationName = errors.New("integration name is required")
)
