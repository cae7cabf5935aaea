package domain

import "github.com/google/uuid"

// Contradiction is a recorded incompatibility between two facts. Facts are
// referenced by description, so later corroboration never rewrites
// Incompatibility.
type Contradiction struct {
	ID              uuid.UUID `json:"id"`
	FactA           string    `json:"fact_a"`
	FactB           string    `json:"fact_b"`
	Incompatibility float64   `json:"incompatibility"`
	Validated       bool      `json:"validated"`
}

// ValidatedOnly returns the validated subset of cs in order.
func ValidatedOnly(cs []Contradiction) []Contradiction {
	var out []Contradiction
	for _, c := range cs {
		if c.Validated {
			out = append(out, c)
		}
	}
	return out
}
