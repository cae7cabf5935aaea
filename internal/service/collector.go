package service

import (
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"go.uber.org/zap"
)

// CollectionStats summarizes one Collect call.
type CollectionStats struct {
	AnomaliesDetected  int     `json:"anomalies_detected"`
	AnomaliesValidated int     `json:"anomalies_validated"`
	ValidationRate     float64 `json:"validation_rate"`
	SufficientData     bool    `json:"sufficient_data"`

	// AnomaliesSkipped counts anomalous statements past the limit. They are
	// still recorded as facts.
	AnomaliesSkipped int                 `json:"anomalies_skipped"`
	SourcesSkipped   int                 `json:"sources_skipped"`
	FactsRecorded    int                 `json:"facts_recorded"`
	Anomalies        []AnomalyAssessment `json:"anomalies,omitempty"`
}

// Collect reads sources into the session using the session's anomaly limit.
func (s *Session) Collect(sources []domain.Source) CollectionStats {
	return s.CollectWithLimit(sources, s.AnomalyLimit)
}

// CollectWithLimit reads every statement of every rational source, scores
// up to limit anomalous statements, and appends the resulting facts to the
// session. A negative limit means the session default.
//
// Statements are deduplicated within this call only: the batch is appended
// as a whole, so a statement repeated in a later call becomes a second fact.
// Calling twice with the same sources therefore counts them twice.
func (s *Session) CollectWithLimit(sources []domain.Source, limit int) CollectionStats {
	if limit < 0 {
		limit = s.AnomalyLimit
	}

	var stats CollectionStats
	batch := make(map[string]*domain.Fact)
	var order []*domain.Fact

	for _, src := range sources {
		if !src.Rational {
			stats.SourcesSkipped++
			s.logger.Debug("skipping non-rational source", zap.String("source", src.Name))
			continue
		}

		for _, statement := range src.Statements {
			if s.anomalies.IsAnomaly(statement) {
				if stats.AnomaliesDetected >= limit {
					stats.AnomaliesSkipped++
				} else {
					stats.AnomaliesDetected++
					a := s.anomalies.Assess(statement, src)
					if a.Validated {
						stats.AnomaliesValidated++
					}
					stats.Anomalies = append(stats.Anomalies, a)

					s.logger.Debug("anomaly assessed",
						zap.String("source", src.Name),
						zap.String("statement", statement),
						zap.Float64("score", a.Score),
						zap.Bool("validated", a.Validated))
				}
			}

			if f, ok := batch[statement]; ok {
				f.AddSource(src)
				continue
			}
			f := domain.NewFact(statement, src)
			batch[statement] = f
			order = append(order, f)
		}
	}

	s.facts.Append(order...)

	stats.FactsRecorded = len(order)
	stats.ValidationRate = float64(stats.AnomaliesValidated) / float64(max(stats.AnomaliesDetected, 1))
	stats.SufficientData = stats.AnomaliesValidated >= s.MinValidatedAnomalies

	s.logger.Info("collection complete",
		zap.Int("sources", len(sources)),
		zap.Int("facts_recorded", stats.FactsRecorded),
		zap.Int("facts_total", s.facts.Count()),
		zap.Int("anomalies_detected", stats.AnomaliesDetected),
		zap.Int("anomalies_validated", stats.AnomaliesValidated),
		zap.Int("anomalies_skipped", stats.AnomaliesSkipped),
		zap.Bool("sufficient_data", stats.SufficientData))

	return stats
}
