package domain

// Event is one occurrence considered by the pattern detector. Timestamp and
// CriticalWindow share whatever time unit the caller picked.
type Event struct {
	Name           string   `json:"name"`
	Beneficiaries  []string `json:"beneficiaries,omitempty"`
	Objectives     []string `json:"objectives,omitempty"`
	Timestamp      float64  `json:"timestamp"`
	CriticalWindow float64  `json:"critical_window"`
}

// BeneficiarySet returns the distinct beneficiaries in first-seen order.
func (e Event) BeneficiarySet() []string {
	return distinct(e.Beneficiaries)
}

// ObjectiveSet returns the distinct objectives in first-seen order.
func (e Event) ObjectiveSet() []string {
	return distinct(e.Objectives)
}

func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
