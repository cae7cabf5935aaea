package store

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/google/uuid"
)

// ContradictionStore keeps the most recent detection result of a session.
type ContradictionStore struct {
	contradictions []domain.Contradiction
}

func NewContradictionStore() *ContradictionStore {
	return &ContradictionStore{}
}

// Replace discards the previous result.
func (s *ContradictionStore) Replace(cs []domain.Contradiction) {
	s.contradictions = append([]domain.Contradiction(nil), cs...)
}

func (s *ContradictionStore) All() []domain.Contradiction {
	return append([]domain.Contradiction(nil), s.contradictions...)
}

func (s *ContradictionStore) GetByID(id uuid.UUID) (*domain.Contradiction, error) {
	for i := range s.contradictions {
		if s.contradictions[i].ID == id {
			c := s.contradictions[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *ContradictionStore) Count() int {
	return len(s.contradictions)
}
