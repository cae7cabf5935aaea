package service

import (
	"math"
	"sort"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"go.uber.org/zap"
)

const (
	MinPatternEvents = 2
	// MinRecurrence is how many events a beneficiary or objective must
	// appear in to count.
	MinRecurrence = 3
	// MinSynchronizations is how many close event pairs must exist before
	// timing counts.
	MinSynchronizations = 2

	RecurringBeneficiaryWeight = 0.2
	SynchronizationWeight      = 0.15
	SharedObjectiveWeight      = 0.15

	// PatternSignificanceThreshold is the raw score the pattern must exceed.
	PatternSignificanceThreshold = 0.5
)

// PatternResult is the Occam filter output. InsufficientData means fewer
// than two events were given and nothing else is set.
type PatternResult struct {
	InsufficientData bool `json:"insufficient_data"`
	// Score is capped at 1.
	Score float64 `json:"score"`
	// RecurringBeneficiaries maps each qualifying beneficiary to the events
	// it appears in.
	RecurringBeneficiaries map[string][]string `json:"recurring_beneficiaries,omitempty"`
	Synchronizations       int                 `json:"synchronizations"`
	// SharedObjectives maps each qualifying objective to its event count.
	SharedObjectives map[string]int `json:"shared_objectives,omitempty"`
	Significant      bool           `json:"significant"`
}

func (r PatternResult) BeneficiaryNames() []string {
	return sortedKeys(r.RecurringBeneficiaries)
}

func (r PatternResult) ObjectiveNames() []string {
	return sortedKeys(r.SharedObjectives)
}

// DetectPatterns looks for beneficiaries and objectives that recur across
// events and for events clustered in time. Two events are synchronized when
// they are closer than the critical window of the earlier-listed one.
func DetectPatterns(events []domain.Event) PatternResult {
	if len(events) < MinPatternEvents {
		return PatternResult{InsufficientData: true}
	}

	beneficiaries := make(map[string][]string)
	objectives := make(map[string]int)
	for _, e := range events {
		for _, b := range e.BeneficiarySet() {
			beneficiaries[b] = append(beneficiaries[b], e.Name)
		}
		for _, o := range e.ObjectiveSet() {
			objectives[o]++
		}
	}

	syncs := 0
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if math.Abs(events[i].Timestamp-events[j].Timestamp) < events[i].CriticalWindow {
				syncs++
			}
		}
	}

	var raw float64
	recurring := make(map[string][]string)
	for name, evs := range beneficiaries {
		if len(evs) >= MinRecurrence {
			raw += float64(len(evs)) * RecurringBeneficiaryWeight
			recurring[name] = evs
		}
	}
	if syncs >= MinSynchronizations {
		raw += float64(syncs) * SynchronizationWeight
	}
	shared := make(map[string]int)
	for name, n := range objectives {
		if n >= MinRecurrence {
			raw += float64(n) * SharedObjectiveWeight
			shared[name] = n
		}
	}

	return PatternResult{
		Score:                  min(raw, 1.0),
		RecurringBeneficiaries: recurring,
		Synchronizations:       syncs,
		SharedObjectives:       shared,
		Significant:            raw > PatternSignificanceThreshold,
	}
}

func (s *Session) DetectPatterns(events []domain.Event) PatternResult {
	r := DetectPatterns(events)
	s.logger.Info("pattern detection complete",
		zap.Int("events", len(events)),
		zap.Bool("insufficient_data", r.InsufficientData),
		zap.Float64("score", r.Score),
		zap.Int("synchronizations", r.Synchronizations),
		zap.Bool("significant", r.Significant))
	return r
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
