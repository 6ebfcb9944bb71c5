// Package model provides DTOs and errors for the forecast module.
package model

import "errors"

var (
	// ErrInvalidTargetDate is returned when the target date is missing or not YYYY-MM-DD.
	ErrInvalidTargetDate = errors.New("invalid target date")

	// ErrInvalidBacklogSize is returned when the backlog size is negative.
	ErrInvalidBacklogSize = errors.New("invalid backlog size")
)
