package domain

// DefaultInfluence applies to actors that do not state an influence weight.
const DefaultInfluence = 0.5

// Actor is a party that may benefit from the events under analysis.
type Actor struct {
	Name  string   `json:"name"`
	Gains []string `json:"gains,omitempty"`
	// Influence is nil when unknown; see EffectiveInfluence.
	Influence *float64 `json:"influence,omitempty"`
}

func (a Actor) EffectiveInfluence() float64 {
	if a.Influence == nil {
		return DefaultInfluence
	}
	return *a.Influence
}

// BenefitScore is the number of potential gains weighted by influence.
func (a Actor) BenefitScore() float64 {
	return float64(len(a.Gains)) * a.EffectiveInfluence()
}

// Influence returns a pointer for Actor literals.
func Influence(v float64) *float64 {
	return &v
}
