package service

import (
	"math/rand/v2"
	"time"

	activityModel "github.com/Mouadistaa/project-pulse-ai/internal/activity/model"
)

// Simulator estimates delivery probability by bootstrap resampling of daily throughput.
// A Simulator is not safe for concurrent use.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a simulator drawing from rng.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// Probability returns the share of trials in which the sum of daily throughputs,
// drawn with replacement from history for every day from today to target,
// reaches backlog. It is 0 when history is empty, the target is not after today,
// or simulations is not positive.
func (s *Simulator) Probability(history []float64, backlog int, target, today time.Time, simulations int) float64 {
	days := activityModel.DaysBetween(today, target)
	if len(history) == 0 || days <= 0 || simulations <= 0 {
		return 0
	}

	goal := float64(backlog)
	successes := 0
	for range simulations {
		total := 0.0
		for range days {
			total += history[s.rng.IntN(len(history))]
		}
		if total >= goal {
			successes++
		}
	}
	return float64(successes) / float64(simulations)
}
