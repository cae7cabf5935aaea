package service

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"go.uber.org/zap"
)

const (
	// MinBeneficiaryScoreForBonus is the top actor score needed before cui
	// bono shifts the verdict.
	MinBeneficiaryScoreForBonus = 3.0
	BeneficiaryBonusPerPoint    = 0.03
	MaxBeneficiaryBonus         = 0.15

	// MinPatternScoreForBonus is the pattern score needed before recurring
	// patterns shift the verdict.
	MinPatternScoreForBonus = 0.6
	PatternBonusFactor      = 0.25
	MaxPatternBonus         = 0.2

	// SignificantBeneficiaryAt is the actor score the report calls out.
	SignificantBeneficiaryAt = 2.0
)

const (
	MsgNoDataAnalyzed       = "no data analyzed"
	MsgCollectBeforeVerdict = "collect information before analysis"
)

// Verdict is the synthesis of every signal. When Error is set nothing else
// is populated.
type Verdict struct {
	Error          string `json:"error,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`

	Bayesian BayesianResult `json:"bayesian"`
	// Beneficiaries and Patterns are nil when not run or discarded by their
	// own significance gate.
	Beneficiaries *BeneficiaryResult `json:"beneficiaries,omitempty"`
	Patterns      *PatternResult     `json:"patterns,omitempty"`

	BeneficiaryBonus float64 `json:"beneficiary_bonus"`
	PatternBonus     float64 `json:"pattern_bonus"`

	OfficialScore    float64        `json:"official_score"`
	AlternativeScore float64        `json:"alternative_score"`
	Outcome          domain.Outcome `json:"outcome"`
	Margin           float64        `json:"margin"`

	ContradictionsIdentified int     `json:"contradictions_identified"`
	ContradictionsValidated  int     `json:"contradictions_validated"`
	CorroboratedFacts        int     `json:"corroborated_facts"`
	TotalFacts               int     `json:"total_facts"`
	Confidence               float64 `json:"confidence"`
}

func (v Verdict) Failed() bool {
	return v.Error != ""
}

// WinningScore is the score of the outcome that won, 0 when indeterminate.
func (v Verdict) WinningScore() float64 {
	switch v.Outcome {
	case domain.OutcomeOfficial:
		return v.OfficialScore
	case domain.OutcomeAlternative:
		return v.AlternativeScore
	}
	return 0
}

// DetermineProbableVersion combines the Bayesian posteriors with the
// beneficiary and pattern analyses. actors and events may be nil. It reads
// the contradictions of the latest DetectContradictions call and does not
// re-run detection.
func (s *Session) DetermineProbableVersion(actors []domain.Actor, events []domain.Event) Verdict {
	if s.facts.Count() == 0 {
		s.logger.Warn("verdict requested with no collected facts")
		return Verdict{Error: MsgNoDataAnalyzed, Recommendation: MsgCollectBeforeVerdict}
	}

	v := Verdict{Bayesian: s.UpdateProbabilities()}

	if len(actors) > 0 {
		if r := s.AnalyzeBeneficiaries(actors); !r.NonConclusive {
			v.Beneficiaries = &r
		}
	}
	if len(events) > 0 {
		if r := s.DetectPatterns(events); !r.InsufficientData {
			v.Patterns = &r
		}
	}

	official := v.Bayesian.Official
	alternative := v.Bayesian.Alternative

	if v.Beneficiaries != nil && len(v.Beneficiaries.Scores) > 0 {
		if top := v.Beneficiaries.MaxScore(); top > MinBeneficiaryScoreForBonus {
			v.BeneficiaryBonus = min(MaxBeneficiaryBonus, top*BeneficiaryBonusPerPoint)
			alternative += v.BeneficiaryBonus
		}
	}

	if v.Patterns != nil && v.Patterns.Significant && v.Patterns.Score > MinPatternScoreForBonus {
		v.PatternBonus = min(MaxPatternBonus, v.Patterns.Score*PatternBonusFactor)
		alternative += v.PatternBonus
	}

	if total := official + alternative; total > 1 {
		official /= total
		alternative /= total
	}

	v.OfficialScore = official
	v.AlternativeScore = alternative
	v.Outcome = domain.ComputeOutcome(official, alternative)
	v.Margin = domain.Margin(official, alternative)
	v.ContradictionsIdentified = s.contradictions.Count()
	v.ContradictionsValidated = v.Bayesian.ValidatedContradictions
	v.CorroboratedFacts = s.facts.CountCorroborated()
	v.TotalFacts = s.facts.Count()
	v.Confidence = v.Bayesian.Confidence

	s.logger.Info("verdict determined",
		zap.String("outcome", string(v.Outcome)),
		zap.Float64("official_score", v.OfficialScore),
		zap.Float64("alternative_score", v.AlternativeScore),
		zap.Float64("margin", v.Margin),
		zap.String("reason", domain.OutcomeReason(official, alternative)))

	return v
}
