// Package model provides domain models and DTOs for the metrics module.
package model

// SnapshotResponse represents a daily snapshot in API responses.
type SnapshotResponse struct {
	Day           string   `json:"day"`
	LeadTimeP50   *float64 `json:"lead_time_p50"`
	LeadTimeP85   *float64 `json:"lead_time_p85"`
	WIP           *int     `json:"wip"`
	Throughput    *float64 `json:"throughput"`
	ReviewTimeP50 *float64 `json:"review_time_p50"`
	BugRatio      *float64 `json:"bug_ratio"`
	PRSizeP50     *float64 `json:"pr_size_p50"`
}

// ToResponse converts a snapshot to its API representation.
func ToResponse(s *Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Day:           s.Day.UTC().Format("2006-01-02"),
		LeadTimeP50:   s.LeadTimeP50,
		LeadTimeP85:   s.LeadTimeP85,
		WIP:           s.WIP,
		Throughput:    s.Throughput,
		ReviewTimeP50: s.ReviewTimeP50,
		BugRatio:      s.BugRatio,
		PRSizeP50:     s.PRSizeP50,
	}
}
