package service

import (
	"fmt"

	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	riskModel "github.com/Mouadistaa/project-pulse-ai/internal/risk/model"
)

// Rule thresholds. Comparisons are strict.
const (
	ThroughputDropFactor = 0.9
	GrowthFactor         = 1.1
	BugRatioThreshold    = 0.2

	DelayScore           = 0.8
	OverloadScore        = 0.9
	InstabilityBaseScore = 0.7
)

// Evaluate applies the risk rules to today's snapshot and the one before it.
// previous may be nil, in which case only rules that need a single snapshot run.
// A rule is skipped when any metric it reads is nil.
func Evaluate(today, previous *metricsModel.Snapshot) []riskModel.Detection {
	if today == nil {
		return nil
	}

	var detections []riskModel.Detection

	if previous != nil &&
		bothSet(today.Throughput, previous.Throughput) &&
		bothSet(today.LeadTimeP85, previous.LeadTimeP85) &&
		*today.Throughput < *previous.Throughput*ThroughputDropFactor &&
		*today.LeadTimeP85 > *previous.LeadTimeP85*GrowthFactor {
		detections = append(detections, riskModel.Detection{
			Type:        riskModel.RiskTypeDelay,
			Score:       DelayScore,
			Explanation: "Delivery slowing down: Throughput dropped while Lead Time increased.",
		})
	}

	if previous != nil &&
		today.WIP != nil && previous.WIP != nil &&
		bothSet(today.LeadTimeP50, previous.LeadTimeP50) &&
		float64(*today.WIP) > float64(*previous.WIP)*GrowthFactor &&
		*today.LeadTimeP50 > *previous.LeadTimeP50*GrowthFactor {
		detections = append(detections, riskModel.Detection{
			Type:        riskModel.RiskTypeOverload,
			Score:       OverloadScore,
			Explanation: "Team potentially overloaded: WIP and Lead Time both increasing.",
		})
	}

	if today.BugRatio != nil && *today.BugRatio > BugRatioThreshold {
		ratio := *today.BugRatio
		detections = append(detections, riskModel.Detection{
			Type:  riskModel.RiskTypeInstability,
			Score: InstabilityBaseScore + (ratio - BugRatioThreshold),
			Explanation: fmt.Sprintf(
				"High bug ratio detected: %.1f%% of resolved issues are bugs.", ratio*100,
			),
		})
	}

	return detections
}

func bothSet(a, b *float64) bool {
	return a != nil && b != nil
}
