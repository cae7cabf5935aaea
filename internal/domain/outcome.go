package domain

import "fmt"

// Outcome is the narrative a verdict settles on.
type Outcome string

const (
	OutcomeIndeterminate Outcome = "indeterminate"
	OutcomeOfficial      Outcome = "official"
	OutcomeAlternative   Outcome = "alternative"
)

// DecisionThreshold is the minimum score margin for a clear-cut verdict.
const DecisionThreshold = 0.15

// ComputeOutcome applies the decision rule: a margin below
// DecisionThreshold is indeterminate, otherwise the higher score wins.
func ComputeOutcome(official, alternative float64) Outcome {
	if Margin(official, alternative) < DecisionThreshold {
		return OutcomeIndeterminate
	}
	if official > alternative {
		return OutcomeOfficial
	}
	return OutcomeAlternative
}

func Margin(official, alternative float64) float64 {
	d := official - alternative
	if d < 0 {
		return -d
	}
	return d
}

func OutcomeReason(official, alternative float64) string {
	m := Margin(official, alternative)
	switch ComputeOutcome(official, alternative) {
	case OutcomeOfficial:
		return fmt.Sprintf("official leads by %.3f (>= %.2f)", m, DecisionThreshold)
	case OutcomeAlternative:
		return fmt.Sprintf("alternative leads by %.3f (>= %.2f)", m, DecisionThreshold)
	default:
		return fmt.Sprintf("margin %.3f < %.2f", m, DecisionThreshold)
	}
}

func ValidOutcome(o string) bool {
	switch Outcome(o) {
	case OutcomeIndeterminate, OutcomeOfficial, OutcomeAlternative:
		return true
	}
	return false
}
