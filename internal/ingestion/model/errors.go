// Package model provides domain models and DTOs for the ingestion module.
package model

import "errors"

var (
	// ErrJobNotFound is returned when a sync job is not found.
	ErrJobNotFound = errors.New("sync job not found")

	// ErrWorkspaceBusy is returned when a pass for the workspace is already running.
	ErrWorkspaceBusy = errors.New("workspace sync already in progress")
)
