// Package model provides domain models and DTOs for the alert module.
package model

import "errors"

var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrInvalidTransition is returned when the alert cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid alert status transition")

	// ErrInvalidStatus is returned for an unknown status filter.
	ErrInvalidStatus = errors.New("invalid alert status")
)
