package service

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
)

const (
	// AnomalyValidationThreshold is the score an anomaly must exceed.
	AnomalyValidationThreshold = 0.6
	// AnomalyCredibilityWeight scales source credibility into the score.
	AnomalyCredibilityWeight = 0.4
	// MeasurableTermBonus rewards anomalies naming a measurable quantity.
	MeasurableTermBonus = 0.2
	// TechnicalTermBonus rewards anomalies that are technically verifiable.
	TechnicalTermBonus = 0.1
)

// AnomalyAssessment is the scoring of one anomalous statement.
type AnomalyAssessment struct {
	Statement  string                `json:"statement"`
	Source     string                `json:"source"`
	Category   domain.SourceCategory `json:"category"`
	Measurable bool                  `json:"measurable"`
	Technical  bool                  `json:"technical"`
	Score      float64               `json:"score"`
	Validated  bool                  `json:"validated"`
}

type AnomalyValidator struct {
	lex *lexicon.Lexicon
}

func NewAnomalyValidator(lex *lexicon.Lexicon) *AnomalyValidator {
	return &AnomalyValidator{lex: lex}
}

func (v *AnomalyValidator) IsAnomaly(statement string) bool {
	return v.lex.IsAnomaly(statement)
}

// Assess scores a statement reported by src. Documents earn the largest
// category bonus and official sources the smallest.
func (v *AnomalyValidator) Assess(statement string, src domain.Source) AnomalyAssessment {
	measurable, technical := v.lex.Specificity(statement)

	score := src.Credibility*AnomalyCredibilityWeight + v.lex.CategoryBonus(src.Category)
	if measurable {
		score += MeasurableTermBonus
	}
	if technical {
		score += TechnicalTermBonus
	}

	return AnomalyAssessment{
		Statement:  statement,
		Source:     src.Name,
		Category:   src.Category,
		Measurable: measurable,
		Technical:  technical,
		Score:      score,
		Validated:  score > AnomalyValidationThreshold,
	}
}
