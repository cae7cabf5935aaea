package domain

// SourceCategory tags where a report comes from. Category only changes
// numeric weights (see lexicon.CategoryBonus), never behavior.
type SourceCategory string

const (
	CategoryOfficial    SourceCategory = "official"
	CategoryAlternative SourceCategory = "alternative"
	CategoryTestimony   SourceCategory = "testimony"
	CategoryDocument    SourceCategory = "document"
)

func ValidSourceCategory(c string) bool {
	switch SourceCategory(c) {
	case CategoryOfficial, CategoryAlternative, CategoryTestimony, CategoryDocument:
		return true
	}
	return false
}

func AllCategories() []SourceCategory {
	return []SourceCategory{CategoryDocument, CategoryTestimony, CategoryAlternative, CategoryOfficial}
}

// Source is an input record. Sources are treated as immutable once built.
type Source struct {
	Name        string         `json:"name"`
	Category    SourceCategory `json:"category"`
	Credibility float64        `json:"credibility"`
	Statements  []string       `json:"statements"`
	// Rational gates the source: non-rational sources are skipped entirely
	// during collection.
	Rational bool `json:"rational"`
}

// NewSource returns a rational source, the common case.
func NewSource(name string, category SourceCategory, credibility float64, statements ...string) Source {
	return Source{
		Name:        name,
		Category:    category,
		Credibility: credibility,
		Statements:  statements,
		Rational:    true,
	}
}

// SingleSourceSolidity is the solidity of a fact backed by s alone.
func (s Source) SingleSourceSolidity() float64 {
	if s.Rational {
		return s.Credibility
	}
	return s.Credibility * 0.5
}
