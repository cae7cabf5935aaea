package service

import (
	"testing"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
	"go.uber.org/zap"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewMemorySession(lexicon.Default(), zap.NewNop())
}

const (
	doorPresent = "the door was present at dawn"
	doorAbsent  = "the door was absent at dawn"
)

// doorSources reports both door statements from three credible sources, so
// each fact ends up corroborated with solidity 1.
func doorSources() []domain.Source {
	return []domain.Source{
		domain.NewSource("archive", domain.CategoryDocument, 0.9, doorPresent, doorAbsent),
		domain.NewSource("witness", domain.CategoryTestimony, 0.9, doorPresent, doorAbsent),
		domain.NewSource("experts", domain.CategoryAlternative, 0.9, doorPresent, doorAbsent),
	}
}

func authorityEvents() []domain.Event {
	return []domain.Event{
		{Name: "main_event", Beneficiaries: []string{"Authority A"}, Objectives: []string{"power", "legitimacy"}, Timestamp: 0, CriticalWindow: 30},
		{Name: "follow_up_measure", Beneficiaries: []string{"Authority A"}, Objectives: []string{"power"}, Timestamp: 15, CriticalWindow: 30},
		{Name: "resulting_policy", Beneficiaries: []string{"Authority A"}, Objectives: []string{"power", "budget"}, Timestamp: 45, CriticalWindow: 60},
	}
}

func standoutActors() []domain.Actor {
	return []domain.Actor{
		{Name: "A", Gains: []string{"legitimacy", "power", "budget", "contracts", "votes"}, Influence: domain.Influence(1.0)},
		{Name: "B", Gains: []string{"criticism"}},
		{Name: "C", Gains: []string{"visibility", "funding"}},
	}
}
