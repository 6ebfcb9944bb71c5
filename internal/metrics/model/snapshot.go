package model

import "time"

// ReviewTimeFactor derives the review-time estimate from the lead-time median.
// There is no review signal in the ingested records; treat the value as an approximation.
const ReviewTimeFactor = 0.6

// Snapshot holds the delivery indicators for one workspace and calendar day.
// Fields are nil when the value was never computed.
// Matches the metrics_daily table schema.
type Snapshot struct {
	ID            string    `gorm:"primaryKey;column:id;type:uuid"                                          json:"id"`
	WorkspaceID   string    `gorm:"column:workspace_id;type:uuid;not null;uniqueIndex:uq_metrics_daily_workspace_day" json:"workspace_id"`
	Day           time.Time `gorm:"column:day;type:date;not null;uniqueIndex:uq_metrics_daily_workspace_day"          json:"day"`
	LeadTimeP50   *float64  `gorm:"column:lead_time_p50"                                                    json:"lead_time_p50"`
	LeadTimeP85   *float64  `gorm:"column:lead_time_p85"                                                    json:"lead_time_p85"`
	WIP           *int      `gorm:"column:wip"                                                              json:"wip"`
	Throughput    *float64  `gorm:"column:throughput"                                                       json:"throughput"`
	ReviewTimeP50 *float64  `gorm:"column:review_time_p50"                                                  json:"review_time_p50"`
	BugRatio      *float64  `gorm:"column:bug_ratio"                                                        json:"bug_ratio"`
	PRSizeP50     *float64  `gorm:"column:pr_size_p50"                                                      json:"pr_size_p50"`
	ComputedAt    time.Time `gorm:"column:computed_at;not null"                                             json:"computed_at"`
}

// TableName specifies the table name for GORM.
func (Snapshot) TableName() string {
	return "metrics_daily"
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
