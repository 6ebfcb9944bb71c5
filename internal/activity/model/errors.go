// Package model defines the normalized activity records produced by ingestion adapters.
package model

import "errors"

// ErrMissingExternalID indicates a record without the external id that keys its upsert.
var ErrMissingExternalID = errors.New("activity record has no external id")
