package service

import (
	"time"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	"github.com/Mouadistaa/project-pulse-ai/pkg/stats"
)

// Aggregate computes the indicators for asOfDay from every record of a workspace.
// Windowed metrics cover [asOfDay - windowDays, asOfDay]; WIP is a gauge over
// all records. Records with unparsable timestamps are left out of the metric
// that needs them. Every field of the result is set; empty inputs yield zeros.
// windowDays must be positive.
func Aggregate(
	asOfDay time.Time,
	windowDays int,
	prs []activityModel.PullRequest,
	items []activityModel.WorkItem,
) metricsModel.Snapshot {
	window := activityModel.TrailingWindow(asOfDay, windowDays)

	var (
		leadTimes []float64
		sizes     []float64
		wip       int
	)
	for _, pr := range prs {
		if pr.IsOpen() {
			wip++
		}

		merged, ok := pr.MergedAt.Parse()
		if !ok || !window.Contains(merged) {
			continue
		}
		created, ok := pr.OpenedAt.Parse()
		if !ok {
			continue
		}
		leadTimes = append(leadTimes, merged.Sub(created).Hours())
		sizes = append(sizes, float64(pr.Size()))
	}

	var resolved, bugs int
	for _, item := range items {
		if !item.IsClosed() {
			continue
		}
		at, ok := item.ResolvedAt.Parse()
		if !ok || !window.Contains(at) {
			continue
		}
		resolved++
		if item.Type() == activityModel.WorkItemTypeBug {
			bugs++
		}
	}

	bugRatio := 0.0
	if resolved > 0 {
		bugRatio = float64(bugs) / float64(resolved)
	}

	p50 := stats.Median(leadTimes)
	return metricsModel.Snapshot{
		Day:           window.End,
		LeadTimeP50:   metricsModel.Float(p50),
		LeadTimeP85:   metricsModel.Float(stats.P85(leadTimes)),
		WIP:           metricsModel.Int(wip),
		Throughput:    metricsModel.Float(float64(len(leadTimes)) / float64(windowDays)),
		ReviewTimeP50: metricsModel.Float(p50 * metricsModel.ReviewTimeFactor),
		BugRatio:      metricsModel.Float(bugRatio),
		PRSizeP50:     metricsModel.Float(stats.Median(sizes)),
	}
}
