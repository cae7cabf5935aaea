package service

import (
	"sort"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"go.uber.org/zap"
)

const (
	// MinBeneficiarySignificance is the max/median score ratio below which
	// the analysis is non-conclusive.
	MinBeneficiarySignificance = 1.5
	// MedianFloor keeps the significance ratio finite.
	MedianFloor = 0.1
)

// BeneficiaryResult is the cui bono analysis. When NonConclusive is set the
// scores are dropped and callers must ignore the analysis.
type BeneficiaryResult struct {
	Scores            map[string]float64 `json:"scores,omitempty"`
	SignificanceRatio float64            `json:"significance_ratio"`
	NonConclusive     bool               `json:"non_conclusive"`
}

type ActorScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Ranked returns the actors by descending score, ties by name.
func (r BeneficiaryResult) Ranked() []ActorScore {
	out := make([]ActorScore, 0, len(r.Scores))
	for name, score := range r.Scores {
		out = append(out, ActorScore{Name: name, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r BeneficiaryResult) MaxScore() float64 {
	var m float64
	for _, v := range r.Scores {
		m = max(m, v)
	}
	return m
}

// Above returns the names scoring strictly above threshold, sorted.
func (r BeneficiaryResult) Above(threshold float64) []string {
	var names []string
	for name, score := range r.Scores {
		if score > threshold {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AnalyzeBeneficiaries scores each actor as gains x influence and checks
// that the top score stands out from the median. An actor listed twice keeps
// its last score.
func AnalyzeBeneficiaries(actors []domain.Actor) BeneficiaryResult {
	if len(actors) == 0 {
		return BeneficiaryResult{Scores: map[string]float64{}}
	}

	scores := make(map[string]float64, len(actors))
	for _, a := range actors {
		scores[a.Name] = a.BenefitScore()
	}

	values := make([]float64, 0, len(scores))
	for _, v := range scores {
		values = append(values, v)
	}
	sort.Float64s(values)

	top := values[len(values)-1]
	median := top
	if len(values) > 1 {
		// upper median
		median = values[len(values)/2]
	}
	ratio := top / max(median, MedianFloor)

	if ratio < MinBeneficiarySignificance {
		return BeneficiaryResult{SignificanceRatio: ratio, NonConclusive: true}
	}
	return BeneficiaryResult{Scores: scores, SignificanceRatio: ratio}
}

func (s *Session) AnalyzeBeneficiaries(actors []domain.Actor) BeneficiaryResult {
	r := AnalyzeBeneficiaries(actors)
	s.logger.Info("beneficiary analysis complete",
		zap.Int("actors", len(actors)),
		zap.Float64("significance_ratio", r.SignificanceRatio),
		zap.Bool("non_conclusive", r.NonConclusive))
	return r
}
