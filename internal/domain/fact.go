package domain

const (
	// CorroborationThreshold is the number of source contributions at which
	// a fact counts as corroborated.
	CorroborationThreshold = 3
	// MaxConvergenceBonus caps the solidity bonus earned from extra sources.
	MaxConvergenceBonus = 0.3
	// ConvergenceBonusPerSource is added per source beyond the first.
	ConvergenceBonusPerSource = 0.1
	// CorroboratedWeightMultiplier boosts a corroborated fact's weight in
	// contradiction strength.
	CorroboratedWeightMultiplier = 1.5
)

// Fact is a deduplicated statement with its contributing sources.
type Fact struct {
	Description  string   `json:"description"`
	Sources      []Source `json:"sources"`
	Solidity     float64  `json:"solidity"`
	Corroborated bool     `json:"corroborated"`
}

// NewFact creates a fact on the first sighting of a statement.
func NewFact(description string, src Source) *Fact {
	f := &Fact{Description: description}
	f.AddSource(src)
	return f
}

// AddSource appends a contribution and recomputes solidity and the
// corroboration flag. The same source may contribute more than once.
func (f *Fact) AddSource(src Source) {
	f.Sources = append(f.Sources, src)
	f.Solidity = ComputeSolidity(f.Sources)
	f.Corroborated = len(f.Sources) >= CorroborationThreshold
}

func (f *Fact) SourceCount() int {
	return len(f.Sources)
}

// Weight is the fact's pull in a contradiction: source count times solidity,
// boosted when corroborated.
func (f *Fact) Weight() float64 {
	w := float64(len(f.Sources)) * f.Solidity
	if f.Corroborated {
		w *= CorroboratedWeightMultiplier
	}
	return w
}

// ComputeSolidity derives solidity from the current sources. One source
// yields its single-source solidity; several yield the mean credibility plus
// a capped convergence bonus, clamped to 1.
func ComputeSolidity(sources []Source) float64 {
	switch len(sources) {
	case 0:
		return 0
	case 1:
		return clampUnit(sources[0].SingleSourceSolidity())
	}

	var sum float64
	for _, s := range sources {
		sum += s.Credibility
	}
	mean := sum / float64(len(sources))
	bonus := min(MaxConvergenceBonus, float64(len(sources)-1)*ConvergenceBonusPerSource)
	return clampUnit(mean + bonus)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
