package store

import "github.com/Harshitk-cp/cuibono/internal/domain"

// FactStore is the in-memory, append-only fact collection of one session.
// Several facts may share a description when separate collection batches
// report the same statement.
type FactStore struct {
	facts  []*domain.Fact
	byDesc map[string][]int
}

func NewFactStore() *FactStore {
	return &FactStore{byDesc: make(map[string][]int)}
}

func (s *FactStore) Append(facts ...*domain.Fact) {
	for _, f := range facts {
		if f == nil {
			continue
		}
		s.byDesc[f.Description] = append(s.byDesc[f.Description], len(s.facts))
		s.facts = append(s.facts, f)
	}
}

// All returns the facts in collection order. The slice is a copy; the facts
// are shared.
func (s *FactStore) All() []*domain.Fact {
	out := make([]*domain.Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

func (s *FactStore) ByDescription(description string) []*domain.Fact {
	idx := s.byDesc[description]
	out := make([]*domain.Fact, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.facts[i])
	}
	return out
}

func (s *FactStore) Count() int {
	return len(s.facts)
}

func (s *FactStore) CountCorroborated() int {
	n := 0
	for _, f := range s.facts {
		if f.Corroborated {
			n++
		}
	}
	return n
}
