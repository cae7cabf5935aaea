package service

import (
	"testing"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectContradictions_NoOverlapAndSamePolarity(t *testing.T) {
	s := newTestSession(t)
	s.Collect([]domain.Source{
		domain.NewSource("commission", domain.CategoryOfficial, 0.7, "Version A"),
		domain.NewSource("experts", domain.CategoryAlternative, 0.8, "contradiction technique impossible"),
		domain.NewSource("witnesses", domain.CategoryTestimony, 0.9, "observation impossible"),
	})

	assert.Empty(t, s.DetectContradictions())

	d := s.Detector()
	assert.False(t, d.Contradictory("Version A", "contradiction technique impossible"))
	assert.False(t, d.Contradictory("Version A", "observation impossible"))
	assert.False(t, d.Contradictory("contradiction technique impossible", "observation impossible"))
	assert.True(t, d.Contradictory("the escape was possible", "observation impossible"))
}

func TestDetectContradictions_ValidatedPair(t *testing.T) {
	s := newTestSession(t)
	s.Collect(doorSources())

	found := s.DetectContradictions()
	require.Len(t, found, 1)

	c := found[0]
	assert.Equal(t, doorPresent, c.FactA)
	assert.Equal(t, doorAbsent, c.FactB)
	// both weights are 3 * 1.0 * 1.5
	assert.InDelta(t, 9.0/11.0, c.Incompatibility, 1e-9)
	assert.True(t, c.Validated)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, found, s.Contradictions())
}

func TestDetectContradictions_RecordedButNotValidated(t *testing.T) {
	s := newTestSession(t)
	s.Collect([]domain.Source{
		domain.NewSource("a", domain.CategoryDocument, 0.9, "the lamp was hot", "the lamp was cold"),
		domain.NewSource("b", domain.CategoryDocument, 0.9, "the lamp was hot", "the lamp was cold"),
	})

	found := s.DetectContradictions()
	require.Len(t, found, 1)
	assert.InDelta(t, 4.0/6.0, found[0].Incompatibility, 1e-9)
	assert.False(t, found[0].Validated)
}

func TestDetectContradictions_BelowRecordThreshold(t *testing.T) {
	s := newTestSession(t)
	s.Collect([]domain.Source{
		domain.NewSource("a", domain.CategoryDocument, 0.9, "the lamp was hot"),
		domain.NewSource("b", domain.CategoryDocument, 0.9, "the lamp was cold"),
	})

	assert.Empty(t, s.DetectContradictions())
}

func TestDetectContradictions_ReplacesPreviousResult(t *testing.T) {
	s := newTestSession(t)
	s.Collect(doorSources())
	s.Collect(doorSources())

	first := s.DetectContradictions()
	second := s.DetectContradictions()

	// four cross pairs between the two batches' present/absent facts
	assert.Len(t, first, 4)
	assert.Len(t, second, 4)
	assert.Len(t, s.Contradictions(), 4)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestValidateContradiction_RereadsCurrentSolidity(t *testing.T) {
	s := newTestSession(t)
	weak := domain.NewSource("weak", domain.CategoryAlternative, 0.3, "the signal was visible")
	strong := domain.NewSource("strong", domain.CategoryDocument, 0.9, "the signal was invisible")
	s.Collect([]domain.Source{weak, weak, weak, strong, strong, strong})

	found := s.DetectContradictions()
	require.Len(t, found, 1)
	c := found[0]
	// weights 2.25 and 4.5
	assert.InDelta(t, 6.75/8.75, c.Incompatibility, 1e-9)
	assert.False(t, c.Validated, "visible fact solidity is 0.5")

	visible := s.Facts()[0]
	require.Equal(t, "the signal was visible", visible.Description)
	visible.AddSource(domain.NewSource("late", domain.CategoryDocument, 1.0))
	visible.AddSource(domain.NewSource("later", domain.CategoryDocument, 1.0))

	assert.True(t, s.ValidateContradiction(c))
	// the stored contradiction is unchanged
	assert.False(t, s.Contradictions()[0].Validated)
	assert.InDelta(t, 6.75/8.75, s.Contradictions()[0].Incompatibility, 1e-9)
}

func TestValidateContradiction_UnknownFacts(t *testing.T) {
	s := newTestSession(t)
	c := domain.Contradiction{FactA: "x", FactB: "y", Incompatibility: 0.99}
	assert.False(t, s.ValidateContradiction(c))
}

func TestIncompatibility_NeverReachesOne(t *testing.T) {
	src := domain.NewSource("s", domain.CategoryDocument, 1.0)
	a := domain.NewFact("a", src)
	b := domain.NewFact("b", src)
	for i := 0; i < 50; i++ {
		a.AddSource(src)
		b.AddSource(src)
	}
	got := Incompatibility(a, b)
	assert.Less(t, got, 1.0)
	assert.Greater(t, got, 0.99)
}
