package model

import (
	"time"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
)

// RiskType identifies the rule that produced a signal.
type RiskType string

// Risk types.
const (
	RiskTypeDelay       RiskType = "DELAY"
	RiskTypeOverload    RiskType = "OVERLOAD"
	RiskTypeInstability RiskType = "INSTABILITY"
)

// Valid reports whether t is a known risk type.
func (t RiskType) Valid() bool {
	switch t {
	case RiskTypeDelay, RiskTypeOverload, RiskTypeInstability:
		return true
	default:
		return false
	}
}

// Detection is the outcome of one fired rule before it is persisted.
type Detection struct {
	Type        RiskType
	Score       float64
	Explanation string
}

// Signal is a persisted risk detection.
// Matches the risk_signals table schema.
type Signal struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid"          json:"id"`
	WorkspaceID string    `gorm:"column:workspace_id;type:uuid;not null"   json:"workspace_id"`
	Type        RiskType  `gorm:"column:type;type:varchar(16);not null"    json:"type"`
	Score       float64   `gorm:"column:score;not null"                    json:"score"`
	Explanation string    `gorm:"column:explanation;not null"              json:"explanation"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"               json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Signal) TableName() string {
	return "risk_signals"
}

// Finding pairs a stored signal with the alert derived from it.
type Finding struct {
	Signal Signal
	Alert  alertModel.Alert
}
