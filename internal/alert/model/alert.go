package model

import (
	"fmt"
	"strings"
	"time"
)

// HighSeverityThreshold is the score above which an alert is HIGH.
const HighSeverityThreshold = 0.8

// Severity is the urgency of an alert.
type Severity string

// Alert severities.
const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

// SeverityForScore maps a signal score to an alert severity.
func SeverityForScore(score float64) Severity {
	if score > HighSeverityThreshold {
		return SeverityHigh
	}
	return SeverityMedium
}

// Status is the lifecycle state of an alert.
type Status string

// Alert statuses.
const (
	StatusNew      Status = "NEW"
	StatusAck      Status = "ACK"
	StatusResolved Status = "RESOLVED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusAck, StatusResolved:
		return true
	default:
		return false
	}
}

// Sources returns the statuses an alert may move from to reach s.
func (s Status) Sources() []Status {
	switch s {
	case StatusAck:
		return []Status{StatusNew}
	case StatusResolved:
		return []Status{StatusNew, StatusAck}
	default:
		return nil
	}
}

// CanTransition reports whether an alert in status from may move to to.
func CanTransition(from, to Status) bool {
	for _, src := range to.Sources() {
		if src == from {
			return true
		}
	}
	return false
}

// ParseStatus converts a user supplied status, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Title builds the alert title for a risk type.
func Title(riskType string) string {
	return "Risk Detected: " + riskType
}

// Alert is the user facing notification derived from one risk signal.
// Matches the alerts table schema.
type Alert struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid"        json:"id"`
	WorkspaceID string    `gorm:"column:workspace_id;type:uuid;not null" json:"workspace_id"`
	SignalID    string    `gorm:"column:signal_id;type:uuid;not null"    json:"signal_id"`
	Severity    Severity  `gorm:"column:severity;type:varchar(16);not null" json:"severity"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"   json:"title"`
	History     string    `gorm:"column:history;not null"                   json:"history"`
	Status      Status    `gorm:"column:status;type:varchar(16);not null"   json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Alert) TableName() string {
	return "alerts"
}
