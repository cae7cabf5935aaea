package domain

import (
	"strings"
	"testing"
)

func TestComputeOutcome(t *testing.T) {
	tests := []struct {
		name        string
		official    float64
		alternative float64
		want        Outcome
	}{
		{"even split", 0.5, 0.5, OutcomeIndeterminate},
		{"small lead official", 0.55, 0.45, OutcomeIndeterminate},
		{"just under threshold", 0.57, 0.43, OutcomeIndeterminate},
		{"official clear", 0.7, 0.3, OutcomeOfficial},
		{"alternative clear", 0.3, 0.7, OutcomeAlternative},
		{"alternative boundary", 0.42, 0.58, OutcomeAlternative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOutcome(tt.official, tt.alternative)
			if got != tt.want {
				t.Errorf("ComputeOutcome(%v, %v) = %v, want %v", tt.official, tt.alternative, got, tt.want)
			}
		})
	}
}

func TestOutcomeReason(t *testing.T) {
	tests := []struct {
		official    float64
		alternative float64
		contains    string
	}{
		{0.8, 0.2, "official leads"},
		{0.2, 0.8, "alternative leads"},
		{0.5, 0.5, "margin 0.000"},
	}

	for _, tt := range tests {
		reason := OutcomeReason(tt.official, tt.alternative)
		if !strings.Contains(reason, tt.contains) {
			t.Errorf("OutcomeReason(%v, %v) = %q, want to contain %q", tt.official, tt.alternative, reason, tt.contains)
		}
	}
}

func TestValidOutcome(t *testing.T) {
	for _, o := range []string{"indeterminate", "official", "alternative"} {
		if !ValidOutcome(o) {
			t.Errorf("ValidOutcome(%q) = false, want true", o)
		}
	}
	if ValidOutcome("unknown") {
		t.Error("ValidOutcome(unknown) = true, want false")
	}
}
