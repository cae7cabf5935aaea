// Package casefile loads the sources, actors and events of one analysis
// from a YAML, TOML or JSON file.
package casefile

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Harshitk-cp/cuibono/internal/codec"
	"github.com/Harshitk-cp/cuibono/internal/domain"
)

var (
	ErrInvalidSource = errors.New("invalid source")
	ErrInvalidActor  = errors.New("invalid actor")
	ErrInvalidEvent  = errors.New("invalid event")
)

// Case is the decoded, validated content of a case file.
type Case struct {
	Title   string
	Sources []domain.Source
	Actors  []domain.Actor
	Events  []domain.Event
}

type sourceRecord struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Category    string   `json:"category" yaml:"category" toml:"category"`
	Credibility float64  `json:"credibility" yaml:"credibility" toml:"credibility"`
	Statements  []string `json:"statements" yaml:"statements" toml:"statements"`
	// Rational defaults to true when omitted.
	Rational *bool `json:"rational,omitempty" yaml:"rational,omitempty" toml:"rational,omitempty"`
}

type actorRecord struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Gains     []string `json:"gains" yaml:"gains" toml:"gains"`
	Influence *float64 `json:"influence,omitempty" yaml:"influence,omitempty" toml:"influence,omitempty"`
}

type eventRecord struct {
	Name           string   `json:"name" yaml:"name" toml:"name"`
	Beneficiaries  []string `json:"beneficiaries" yaml:"beneficiaries" toml:"beneficiaries"`
	Objectives     []string `json:"objectives" yaml:"objectives" toml:"objectives"`
	Timestamp      float64  `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	CriticalWindow float64  `json:"critical_window" yaml:"critical_window" toml:"critical_window"`
}

type fileRecord struct {
	Title   string         `json:"title" yaml:"title" toml:"title"`
	Sources []sourceRecord `json:"sources" yaml:"sources" toml:"sources"`
	Actors  []actorRecord  `json:"actors" yaml:"actors" toml:"actors"`
	Events  []eventRecord  `json:"events" yaml:"events" toml:"events"`
}

// Load reads and validates a case file; the extension selects the format.
func Load(path string) (*Case, error) {
	var rec fileRecord
	if err := codec.DecodeFile(path, &rec); err != nil {
		return nil, err
	}
	return rec.toCase()
}

// Parse decodes data in the given format.
func Parse(data []byte, format codec.Format) (*Case, error) {
	var rec fileRecord
	if err := codec.Decode(data, format, &rec); err != nil {
		return nil, err
	}
	return rec.toCase()
}

func (r fileRecord) toCase() (*Case, error) {
	c := &Case{Title: r.Title}

	for _, s := range r.Sources {
		rational := true
		if s.Rational != nil {
			rational = *s.Rational
		}
		c.Sources = append(c.Sources, domain.Source{
			Name:        s.Name,
			Category:    domain.SourceCategory(strings.ToLower(strings.TrimSpace(s.Category))),
			Credibility: s.Credibility,
			Statements:  s.Statements,
			Rational:    rational,
		})
	}
	for _, a := range r.Actors {
		c.Actors = append(c.Actors, domain.Actor{Name: a.Name, Gains: a.Gains, Influence: a.Influence})
	}
	for _, e := range r.Events {
		c.Events = append(c.Events, domain.Event{
			Name:           e.Name,
			Beneficiaries:  e.Beneficiaries,
			Objectives:     e.Objectives,
			Timestamp:      e.Timestamp,
			CriticalWindow: e.CriticalWindow,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects records the analysis cannot score.
func (c *Case) Validate() error {
	for i, s := range c.Sources {
		switch {
		case strings.TrimSpace(s.Name) == "":
			return fmt.Errorf("sources[%d]: %w: name is required", i, ErrInvalidSource)
		case !domain.ValidSourceCategory(string(s.Category)):
			return fmt.Errorf("sources[%d]: %w: %s: unknown category %q (want one of %s)",
				i, ErrInvalidSource, s.Name, s.Category, categoryList())
		case !(s.Credibility >= 0 && s.Credibility <= 1):
			return fmt.Errorf("sources[%d]: %w: %s: credibility %v outside [0,1]", i, ErrInvalidSource, s.Name, s.Credibility)
		}
	}
	for i, a := range c.Actors {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("actors[%d]: %w: name is required", i, ErrInvalidActor)
		}
		if a.Influence != nil && !(finite(*a.Influence) && *a.Influence >= 0) {
			return fmt.Errorf("actors[%d]: %w: influence %v must be a finite non-negative number", i, ErrInvalidActor, *a.Influence)
		}
	}
	for i, e := range c.Events {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("events[%d]: %w: name is required", i, ErrInvalidEvent)
		}
		if !finite(e.Timestamp) {
			return fmt.Errorf("events[%d]: %w: timestamp %v is not finite", i, ErrInvalidEvent, e.Timestamp)
		}
		if !(finite(e.CriticalWindow) && e.CriticalWindow >= 0) {
			return fmt.Errorf("events[%d]: %w: critical window %v must be a finite non-negative number", i, ErrInvalidEvent, e.CriticalWindow)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func categoryList() string {
	names := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
