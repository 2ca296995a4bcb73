package parser

import (
	"math"

	"temporal-intent-engine/internal/model"
)

// confidence scores how much of the text was understood, clamped to [0,1]
// and rounded to two decimals.
func confidence(m merged, checks model.CounterfactualChecks) float64 {
	score := confidenceBase
	if len(m.dates) > 0 {
		score += confidenceDates
	}
	if len(m.times) > 0 {
		score += confidenceTimes
	}
	if m.recurring != nil {
		score += confidenceRecurrence
	}
	if checks.Passed {
		score += confidencePassed
	}
	score -= confidencePenalty * float64(len(checks.Conflicts))

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}
