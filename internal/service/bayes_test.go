package service

import (
	"testing"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProbabilities_NeutralWithoutEvidence(t *testing.T) {
	s := newTestSession(t)
	s.Collect([]domain.Source{domain.NewSource("a", domain.CategoryOfficial, 0.7, "Version A")})
	s.DetectContradictions()

	r := s.UpdateProbabilities()

	assert.Equal(t, 0.5, r.Official)
	assert.Equal(t, 0.5, r.Alternative)
	assert.Zero(t, r.ValidatedContradictions)
	assert.Zero(t, r.Confidence)
}

func TestUpdateProbabilities_NoFacts(t *testing.T) {
	s := newTestSession(t)

	r := s.UpdateProbabilities()

	assert.Equal(t, 0.5, r.Official)
	assert.Zero(t, r.Confidence)
}

func TestUpdateProbabilities_TieBonusGoesToAlternative(t *testing.T) {
	s := newTestSession(t)
	src := domain.NewSource("s", domain.CategoryDocument, 0.8, "shared statement")
	s.Collect([]domain.Source{src, src, src})

	r := s.UpdateProbabilities()

	assert.InDelta(t, 0.5/1.02, r.Official, 1e-12)
	assert.InDelta(t, 0.52/1.02, r.Alternative, 1e-12)
	assert.InDelta(t, 1.0, r.Confidence, 1e-12)
}

func TestUpdateProbabilities_ValidatedContradictions(t *testing.T) {
	s := newTestSession(t)
	s.Collect(doorSources())
	s.DetectContradictions()

	r := s.UpdateProbabilities()

	incompat := 9.0 / 11.0
	reduction := incompat * 0.1
	official := 0.5 * (1 - reduction)
	alternative := 1 - official + 2*0.02
	total := official + alternative

	assert.Equal(t, 1, r.ValidatedContradictions)
	assert.InDelta(t, official/total, r.Official, 1e-12)
	assert.InDelta(t, alternative/total, r.Alternative, 1e-12)
	assert.InDelta(t, 1.0, r.Confidence, 1e-12)
}

func TestUpdateProbabilities_OnlyValidatedCount(t *testing.T) {
	s := newTestSession(t)
	s.Collect([]domain.Source{
		domain.NewSource("a", domain.CategoryDocument, 0.9, "the lamp was hot", "the lamp was cold"),
		domain.NewSource("b", domain.CategoryDocument, 0.9, "the lamp was hot", "the lamp was cold"),
	})
	s.DetectContradictions()

	r := s.UpdateProbabilities()

	assert.Zero(t, r.ValidatedContradictions)
	assert.Equal(t, 0.5, r.Official)
}

func TestUpdateProbabilities_ReductionCapped(t *testing.T) {
	s := newTestSession(t)
	var contradictions []domain.Contradiction
	for i := 0; i < 20; i++ {
		contradictions = append(contradictions, domain.Contradiction{FactA: "a", FactB: "b", Incompatibility: 0.9, Validated: true})
	}
	s.contradictions.Replace(contradictions)

	r := s.UpdateProbabilities()

	assert.InDelta(t, 0.5*0.2, r.Official, 1e-12)
	assert.InDelta(t, 0.9, r.Alternative, 1e-12)
}

func TestUpdateProbabilities_AlwaysSumsToOne(t *testing.T) {
	scenarios := map[string][]domain.Source{
		"door":  doorSources(),
		"mixed": append(doorSources(), domain.NewSource("x", domain.CategoryOfficial, 0.4, "strange", "the lamp was hot")),
		"empty": nil,
	}

	for name, sources := range scenarios {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(t)
			s.Collect(sources)
			s.DetectContradictions()
			r := s.UpdateProbabilities()
			assert.InDelta(t, 1.0, r.Official+r.Alternative, 1e-15)
		})
	}
}
