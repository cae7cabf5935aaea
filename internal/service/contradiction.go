package service

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ContradictionRecordThreshold is the incompatibility a candidate pair
	// must exceed to be recorded.
	ContradictionRecordThreshold = 0.6
	// ContradictionValidationThreshold is the incompatibility a recorded
	// contradiction must exceed to be validated.
	ContradictionValidationThreshold = 0.7
	// MinFactSolidityForValidation applies to both referenced facts.
	MinFactSolidityForValidation = 0.6
)

type ContradictionDetector struct {
	lex *lexicon.Lexicon
}

func NewContradictionDetector(lex *lexicon.Lexicon) *ContradictionDetector {
	return &ContradictionDetector{lex: lex}
}

// Contradictory reports whether two descriptions are candidate-contradictory:
// one side of an opposition or domain pair appears in each.
func (d *ContradictionDetector) Contradictory(a, b string) bool {
	return d.lex.Opposed(a, b)
}

// Match is Contradictory that also returns the pair that fired.
func (d *ContradictionDetector) Match(a, b string) (lexicon.Pair, bool) {
	return d.lex.MatchingPair(a, b)
}

// Incompatibility grows with the combined weight of both facts and stays
// below 1.
func Incompatibility(a, b *domain.Fact) float64 {
	w := a.Weight() + b.Weight()
	return min(1.0, w/(w+2))
}

// DetectContradictions scans every unordered fact pair and replaces the
// session's contradictions with the pairs above the record threshold.
func (s *Session) DetectContradictions() []domain.Contradiction {
	facts := s.facts.All()
	var found []domain.Contradiction

	for i := 0; i < len(facts); i++ {
		for j := i + 1; j < len(facts); j++ {
			a, b := facts[i], facts[j]
			pair, ok := s.detector.Match(a.Description, b.Description)
			if !ok {
				continue
			}

			level := Incompatibility(a, b)
			if level <= ContradictionRecordThreshold {
				s.logger.Debug("candidate below record threshold",
					zap.String("fact_a", a.Description),
					zap.String("fact_b", b.Description),
					zap.Float64("incompatibility", level))
				continue
			}

			c := domain.Contradiction{
				ID:              uuid.New(),
				FactA:           a.Description,
				FactB:           b.Description,
				Incompatibility: level,
			}
			c.Validated = s.ValidateContradiction(c)
			found = append(found, c)

			s.logger.Debug("contradiction recorded",
				zap.String("pair", pair.String()),
				zap.String("fact_a", c.FactA),
				zap.String("fact_b", c.FactB),
				zap.Float64("incompatibility", level),
				zap.Bool("validated", c.Validated))
		}
	}

	s.contradictions.Replace(found)

	s.logger.Info("contradiction detection complete",
		zap.Int("facts", len(facts)),
		zap.Int("contradictions", len(found)),
		zap.Int("validated", len(domain.ValidatedOnly(found))))

	return found
}

// ValidateContradiction checks c against the facts currently in the store:
// every fact carrying either description must be solid enough, and the
// recorded incompatibility must pass the validation threshold. Re-running it
// after more corroboration may give a different answer than the Validated
// flag stored at detection time.
func (s *Session) ValidateContradiction(c domain.Contradiction) bool {
	referenced := s.facts.ByDescription(c.FactA)
	if c.FactB != c.FactA {
		referenced = append(referenced, s.facts.ByDescription(c.FactB)...)
	}
	if len(referenced) < 2 {
		return false
	}

	for _, f := range referenced {
		if f.Solidity <= MinFactSolidityForValidation {
			return false
		}
	}
	return c.Incompatibility > ContradictionValidationThreshold
}
