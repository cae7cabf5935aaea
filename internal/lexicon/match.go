package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes s to NFC and applies Unicode case folding, so "Étrange",
// "étrange" and a decomposed "étrange" compare equal.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Words splits folded text into letter/digit runs.
func Words(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// text is a statement prepared once for repeated lookups.
type text struct {
	folded string
	words  []string
}

func prepare(s string) text {
	return text{folded: Fold(s), words: Words(s)}
}

// containsTerm is a substring test on folded text.
func (t text) containsTerm(term string) bool {
	return term != "" && strings.Contains(t.folded, term)
}

// containsPhrase reports whether phrase occurs as a contiguous run of whole
// words, so "impossible" never counts as "possible".
func (t text) containsPhrase(phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(t.words) {
		return false
	}
	for i := 0; i+len(phrase) <= len(t.words); i++ {
		match := true
		for j, w := range phrase {
			if t.words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
