package service

import (
	"github.com/Harshitk-cp/cuibono/internal/config"
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
	"github.com/Harshitk-cp/cuibono/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one analysis run. It owns the fact and contradiction
// collections; constructing a new Session is the only way to reset them.
// A Session is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	facts          domain.FactStore
	contradictions domain.ContradictionStore
	anomalies      *AnomalyValidator
	detector       *ContradictionDetector
	logger         *zap.Logger

	// AnomalyLimit caps the anomalous statements scored per Collect call.
	AnomalyLimit int
	// MinValidatedAnomalies is the sufficiency gate reported by Collect.
	MinValidatedAnomalies int
}

func NewSession(fs domain.FactStore, cs domain.ContradictionStore, lex *lexicon.Lexicon, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		ID:                    id,
		facts:                 fs,
		contradictions:        cs,
		anomalies:             NewAnomalyValidator(lex),
		detector:              NewContradictionDetector(lex),
		logger:                logger.With(zap.String("session_id", id.String())),
		AnomalyLimit:          config.DefaultAnomalyLimit,
		MinValidatedAnomalies: config.DefaultMinValidatedAnomalies,
	}
}

// NewMemorySession builds a session over fresh in-memory stores.
func NewMemorySession(lex *lexicon.Lexicon, logger *zap.Logger) *Session {
	return NewSession(store.NewFactStore(), store.NewContradictionStore(), lex, logger)
}

// Facts returns the collected facts in collection order.
func (s *Session) Facts() []*domain.Fact {
	return s.facts.All()
}

// Contradictions returns the result of the latest DetectContradictions call.
func (s *Session) Contradictions() []domain.Contradiction {
	return s.contradictions.All()
}

func (s *Session) Detector() *ContradictionDetector {
	return s.detector
}
