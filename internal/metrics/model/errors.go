package model

import "errors"

var (
	// ErrSnapshotNotFound indicates that no snapshot exists for the requested key.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrInvalidWindow indicates a non-positive aggregation window.
	ErrInvalidWindow = errors.New("window must be at least one day")
)
