package service

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/cuibono/internal/domain"
)

const noDataReport = `ANALYSIS IMPOSSIBLE: INSUFFICIENT DATA

No information has been collected for analysis.
The protocol needs at least one information source
with verifiable facts to work.

RECOMMENDATION: Provide documented sources with specific information.`

// RenderConclusion determines the verdict and formats it as a report.
func (s *Session) RenderConclusion(actors []domain.Actor, events []domain.Event) string {
	if s.facts.Count() == 0 {
		return noDataReport
	}
	return FormatConclusion(s.DetermineProbableVersion(actors, events))
}

// Justifications lists the non-empty reasons behind a verdict.
func Justifications(v Verdict) []string {
	var reasons []string

	if v.ContradictionsValidated > 0 {
		reasons = append(reasons, fmt.Sprintf("%d major contradictions validated out of %d identified",
			v.ContradictionsValidated, v.ContradictionsIdentified))
	}
	if v.CorroboratedFacts > 0 {
		reasons = append(reasons, fmt.Sprintf("%d facts confirmed by multiple independent sources", v.CorroboratedFacts))
	}
	if v.Beneficiaries != nil {
		if names := v.Beneficiaries.Above(SignificantBeneficiaryAt); len(names) > 0 {
			reasons = append(reasons, "Significant beneficiaries identified: "+strings.Join(names, ", "))
		}
	}
	if p := v.Patterns; p != nil && p.Significant {
		if len(p.RecurringBeneficiaries) > 0 {
			reasons = append(reasons, "Recurring beneficiary pattern validated: "+strings.Join(p.BeneficiaryNames(), ", "))
		}
		if len(p.SharedObjectives) > 0 {
			reasons = append(reasons, "Recurring strategic objectives: "+strings.Join(p.ObjectiveNames(), ", "))
		}
	}
	return reasons
}

// FormatConclusion renders a verdict without recomputing anything.
func FormatConclusion(v Verdict) string {
	if v.Failed() {
		return fmt.Sprintf("ANALYSIS ERROR: %s\n%s", v.Error, v.Recommendation)
	}

	reasons := Justifications(v)
	var b strings.Builder

	if v.Outcome == domain.OutcomeIndeterminate {
		fmt.Fprintln(&b, "MOST PROBABLE VERSION: INDETERMINATE")
		fmt.Fprintf(&b, "Official probability: %s\n", percent(v.OfficialScore))
		fmt.Fprintf(&b, "Alternative probability: %s\n", percent(v.AlternativeScore))
		fmt.Fprintf(&b, "Decision margin: %s (< %s required for a clear conclusion)\n\n",
			percent(v.Margin), percent(domain.DecisionThreshold))
		fmt.Fprintln(&b, "JUSTIFICATION:")
		fmt.Fprintln(&b, "The available data does not establish with sufficient certainty")
		fmt.Fprintln(&b, "which version of events is the most probable. Further investigation")
		fmt.Fprintln(&b, "is needed to obtain discriminating evidence.")
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "ANALYSIS ELEMENTS:")
		writeBullets(&b, reasons, "No significant discriminating element identified")
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "CONFIDENCE LEVEL: %s\n", percent(v.Confidence))
		fmt.Fprint(&b, "RECOMMENDATION: Look for additional sources or more discriminating evidence.")
		return b.String()
	}

	coherence := "Acceptable coherence"
	if v.ContradictionsValidated > 1 {
		coherence = "Significant inconsistencies"
	}

	fmt.Fprintf(&b, "MOST PROBABLE VERSION: %s\n", strings.ToUpper(string(v.Outcome)))
	fmt.Fprintf(&b, "Probability: %s\n", percent(v.WinningScore()))
	fmt.Fprintf(&b, "Decision margin: %s\n\n", percent(v.Margin))
	fmt.Fprintln(&b, "JUSTIFICATION:")
	writeBullets(&b, reasons, "Analysis based on the overall coherence of the data")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "ANALYSIS ELEMENTS:")
	fmt.Fprintf(&b, "• Bayesian probability of the official version: %s\n", percent(v.Bayesian.Official))
	fmt.Fprintf(&b, "• Validated/total contradictions: %d/%d\n", v.ContradictionsValidated, v.ContradictionsIdentified)
	fmt.Fprintf(&b, "• Data confidence level: %s\n", percent(v.Confidence))
	fmt.Fprintf(&b, "• Coherence vs inconsistencies: %s", coherence)
	return b.String()
}

func writeBullets(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "• %s\n", fallback)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
