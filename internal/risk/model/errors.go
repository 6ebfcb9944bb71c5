// Package model provides domain models and DTOs for the risk module.
package model

import "errors"

// ErrInvalidRiskType is returned when a signal carries an unknown type.
var ErrInvalidRiskType = errors.New("invalid risk type")
