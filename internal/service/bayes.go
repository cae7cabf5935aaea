package service

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"go.uber.org/zap"
)

const (
	// NeutralPrior is the starting probability of each narrative.
	NeutralPrior = 0.5
	// MaxOfficialReduction caps how far validated contradictions can pull
	// the official narrative down.
	MaxOfficialReduction = 0.8
	// ReductionPerContradiction scales count x mean incompatibility.
	ReductionPerContradiction = 0.1
	// MaxStabilityBonus caps the bonus from corroborated facts.
	MaxStabilityBonus = 0.1
	// StabilityBonusPerFact is earned per corroborated fact.
	StabilityBonusPerFact = 0.02
)

// BayesianResult holds the two competing posteriors. Official and
// Alternative always sum to 1.
type BayesianResult struct {
	Official                float64 `json:"official"`
	Alternative             float64 `json:"alternative"`
	ValidatedContradictions int     `json:"validated_contradictions"`
	// Confidence is the share of facts that are corroborated.
	Confidence float64 `json:"confidence"`
}

// UpdateProbabilities starts from a neutral prior, lowers the official
// narrative by the validated contradictions of the latest detection, and
// gives a stability bonus to whichever side leads.
func (s *Session) UpdateProbabilities() BayesianResult {
	official := NeutralPrior
	alternative := NeutralPrior

	validated := domain.ValidatedOnly(s.contradictions.All())
	if len(validated) > 0 {
		var sum float64
		for _, c := range validated {
			sum += c.Incompatibility
		}
		mean := sum / float64(len(validated))
		reduction := min(MaxOfficialReduction, float64(len(validated))*mean*ReductionPerContradiction)

		official *= 1 - reduction
		alternative = 1 - official
	}

	corroborated := s.facts.CountCorroborated()
	if corroborated > 0 {
		bonus := min(MaxStabilityBonus, float64(corroborated)*StabilityBonusPerFact)
		// Ties go to the alternative narrative.
		if official > alternative {
			official = min(1.0, official+bonus)
		} else {
			alternative = min(1.0, alternative+bonus)
		}

		total := official + alternative
		official /= total
		alternative = 1 - official
	}

	result := BayesianResult{
		Official:                official,
		Alternative:             alternative,
		ValidatedContradictions: len(validated),
		Confidence:              min(float64(corroborated)/float64(max(s.facts.Count(), 1)), 1.0),
	}

	s.logger.Info("probabilities updated",
		zap.Float64("official", result.Official),
		zap.Float64("alternative", result.Alternative),
		zap.Int("validated_contradictions", result.ValidatedContradictions),
		zap.Float64("confidence", result.Confidence))

	return result
}
