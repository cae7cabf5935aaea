package domain

import "github.com/google/uuid"

// FactStore holds a session's facts in collection order. Facts are only
// ever appended.
type FactStore interface {
	Append(facts ...*Fact)
	All() []*Fact
	ByDescription(description string) []*Fact
	Count() int
	CountCorroborated() int
}

// ContradictionStore holds the latest detection result. Replace swaps the
// whole collection.
type ContradictionStore interface {
	Replace(cs []Contradiction)
	All() []Contradiction
	GetByID(id uuid.UUID) (*Contradiction, error)
	Count() int
}
