// Package lexicon holds the fixed term tables that drive anomaly scoring and
// contradiction detection. Tables are plain data so a domain can be swapped
// by loading a different file; detection code never hard-codes a term.
package lexicon

import (
	"errors"
	"fmt"

	"github.com/Harshitk-cp/cuibono/internal/domain"
)

var (
	ErrInvalidLexicon = errors.New("invalid lexicon")
	ErrUnknownLexicon = errors.New("unknown built-in lexicon")
)

// Pair is two terms that contradict each other when one appears in each of
// two statements, in either order.
type Pair struct {
	A string `json:"a" yaml:"a" toml:"a"`
	B string `json:"b" yaml:"b" toml:"b"`
}

func (p Pair) String() string {
	return p.A + "/" + p.B
}

// Tables is the serializable form of a lexicon.
type Tables struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// AnomalyTerms flag a statement as anomalous (substring match).
	AnomalyTerms []string `json:"anomaly_terms" yaml:"anomaly_terms" toml:"anomaly_terms"`
	// MeasurableTerms mark an anomaly as specific.
	MeasurableTerms []string `json:"measurable_terms" yaml:"measurable_terms" toml:"measurable_terms"`
	// TechnicalTerms mark an anomaly as technically verifiable.
	TechnicalTerms  []string                          `json:"technical_terms" yaml:"technical_terms" toml:"technical_terms"`
	OppositionPairs []Pair                            `json:"opposition_pairs" yaml:"opposition_pairs" toml:"opposition_pairs"`
	DomainPairs     []Pair                            `json:"domain_pairs" yaml:"domain_pairs" toml:"domain_pairs"`
	CategoryBonus   map[domain.SourceCategory]float64 `json:"category_bonus" yaml:"category_bonus" toml:"category_bonus"`
}

type compiledPair struct {
	pair Pair
	a, b []string
}

// Lexicon is a validated, pre-folded set of tables. It is read-only after
// New and may be shared between sessions.
type Lexicon struct {
	tables     Tables
	anomaly    []string
	measurable []string
	technical  []string
	pairs      []compiledPair
}

// New validates t and folds every term once.
func New(t Tables) (*Lexicon, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	l := &Lexicon{
		tables:     t,
		anomaly:    foldAll(t.AnomalyTerms),
		measurable: foldAll(t.MeasurableTerms),
		technical:  foldAll(t.TechnicalTerms),
	}
	// Opposition pairs are checked before domain pairs.
	for _, p := range append(append([]Pair{}, t.OppositionPairs...), t.DomainPairs...) {
		l.pairs = append(l.pairs, compiledPair{pair: p, a: Words(p.A), b: Words(p.B)})
	}
	return l, nil
}

// Validate rejects empty terms, empty pair sides, unknown categories and
// bonuses outside [0,1].
func (t Tables) Validate() error {
	for _, list := range [][]string{t.AnomalyTerms, t.MeasurableTerms, t.TechnicalTerms} {
		for _, term := range list {
			if len(Words(term)) == 0 {
				return fmt.Errorf("%w: empty term", ErrInvalidLexicon)
			}
		}
	}
	for _, p := range append(append([]Pair{}, t.OppositionPairs...), t.DomainPairs...) {
		if len(Words(p.A)) == 0 || len(Words(p.B)) == 0 {
			return fmt.Errorf("%w: pair %q has an empty side", ErrInvalidLexicon, p.String())
		}
	}
	for cat, bonus := range t.CategoryBonus {
		if !domain.ValidSourceCategory(string(cat)) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidLexicon, cat)
		}
		if bonus < 0 || bonus > 1 {
			return fmt.Errorf("%w: bonus for %q out of range: %v", ErrInvalidLexicon, cat, bonus)
		}
	}
	return nil
}

func (l *Lexicon) Name() string {
	return l.tables.Name
}

// Tables returns a copy of the underlying tables.
func (l *Lexicon) Tables() Tables {
	t := l.tables
	t.AnomalyTerms = append([]string(nil), t.AnomalyTerms...)
	t.MeasurableTerms = append([]string(nil), t.MeasurableTerms...)
	t.TechnicalTerms = append([]string(nil), t.TechnicalTerms...)
	t.OppositionPairs = append([]Pair(nil), t.OppositionPairs...)
	t.DomainPairs = append([]Pair(nil), t.DomainPairs...)
	t.CategoryBonus = make(map[domain.SourceCategory]float64, len(l.tables.CategoryBonus))
	for k, v := range l.tables.CategoryBonus {
		t.CategoryBonus[k] = v
	}
	return t
}

// IsAnomaly reports whether the statement contains any anomaly term,
// case-insensitively.
func (l *Lexicon) IsAnomaly(statement string) bool {
	return prepare(statement).containsAny(l.anomaly)
}

// Specificity reports whether the statement names a measurable quantity and
// whether it names a technically verifiable one.
func (l *Lexicon) Specificity(statement string) (measurable, technical bool) {
	t := prepare(statement)
	return t.containsAny(l.measurable), t.containsAny(l.technical)
}

// CategoryBonus returns the anomaly-validation bonus for a source category,
// 0 for categories the lexicon does not list.
func (l *Lexicon) CategoryBonus(c domain.SourceCategory) float64 {
	return l.tables.CategoryBonus[c]
}

// Opposed reports whether two statements are candidate-contradictory.
func (l *Lexicon) Opposed(a, b string) bool {
	_, ok := l.MatchingPair(a, b)
	return ok
}

// MatchingPair returns the first pair with one side in each statement.
func (l *Lexicon) MatchingPair(a, b string) (Pair, bool) {
	ta, tb := prepare(a), prepare(b)
	for _, p := range l.pairs {
		if (ta.containsPhrase(p.a) && tb.containsPhrase(p.b)) ||
			(ta.containsPhrase(p.b) && tb.containsPhrase(p.a)) {
			return p.pair, true
		}
	}
	return Pair{}, false
}

func (t text) containsAny(terms []string) bool {
	for _, term := range terms {
		if t.containsTerm(term) {
			return true
		}
	}
	return false
}

func foldAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		out = append(out, Fold(term))
	}
	return out
}
