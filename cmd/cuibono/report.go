package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/cuibono/internal/casefile"
	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/service"
)

type factRow struct {
	Description  string   `json:"description"`
	Sources      []string `json:"sources"`
	Solidity     float64  `json:"solidity"`
	Corroborated bool     `json:"corroborated"`
}

// analysisReport is the machine-readable outcome of one analyze run.
type analysisReport struct {
	SessionID      uuid.UUID               `json:"session_id"`
	Title          string                  `json:"title,omitempty"`
	Lexicon        string                  `json:"lexicon"`
	Collection     service.CollectionStats `json:"collection"`
	Facts          []factRow               `json:"facts"`
	Contradictions []domain.Contradiction  `json:"contradictions"`
	Verdict        service.Verdict         `json:"verdict"`
	Conclusion     string                  `json:"conclusion"`
}

func newAnalysisReport(session *service.Session, c *casefile.Case, lexiconName string, stats service.CollectionStats) analysisReport {
	verdict := session.DetermineProbableVersion(c.Actors, c.Events)

	facts := session.Facts()
	rows := make([]factRow, 0, len(facts))
	for _, f := range facts {
		names := make([]string, 0, len(f.Sources))
		for _, src := range f.Sources {
			names = append(names, src.Name)
		}
		rows = append(rows, factRow{
			Description:  f.Description,
			Sources:      names,
			Solidity:     f.Solidity,
			Corroborated: f.Corroborated,
		})
	}

	contradictions := session.Contradictions()
	if contradictions == nil {
		contradictions = []domain.Contradiction{}
	}

	return analysisReport{
		SessionID:      session.ID,
		Title:          c.Title,
		Lexicon:        lexiconName,
		Collection:     stats,
		Facts:          rows,
		Contradictions: contradictions,
		Verdict:        verdict,
		Conclusion:     service.FormatConclusion(verdict),
	}
}

func printReportTables(cmd *cobra.Command, r analysisReport, minValidated int) error {
	out := cmd.OutOrStdout()
	var b strings.Builder

	if r.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Title)
	}
	if !r.Collection.SufficientData {
		fmt.Fprintf(&b, "%s\n\n", insufficientDataWarning(r.Collection, minValidated))
	}

	fmt.Fprintln(&b, "Facts")
	factRows := make([][]string, 0, len(r.Facts))
	for _, f := range r.Facts {
		factRows = append(factRows, []string{
			f.Description,
			strings.Join(f.Sources, ", "),
			formatScore(f.Solidity),
			yesNo(f.Corroborated),
		})
	}
	fmt.Fprintln(&b, renderTable(out,
		[]string{"Description", "Sources", "Solidity", "Corroborated"},
		factRows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))

	if len(r.Contradictions) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Contradictions")
		rows := make([][]string, 0, len(r.Contradictions))
		for _, c := range r.Contradictions {
			rows = append(rows, []string{c.FactA, c.FactB, formatScore(c.Incompatibility), yesNo(c.Validated)})
		}
		fmt.Fprintln(&b, renderTable(out,
			[]string{"Fact A", "Fact B", "Incompatibility", "Validated"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))
	}

	if r.Verdict.Beneficiaries != nil {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Beneficiaries")
		ranked := r.Verdict.Beneficiaries.Ranked()
		rows := make([][]string, 0, len(ranked))
		for _, a := range ranked {
			rows = append(rows, []string{a.Name, formatScore(a.Score)})
		}
		fmt.Fprintln(&b, renderTable(out, []string{"Actor", "Benefit"}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Verdict")
	v := r.Verdict
	var verdictRows [][]string
	if v.Failed() {
		verdictRows = [][]string{{"Error", v.Error}, {"Recommendation", v.Recommendation}}
	} else {
		verdictRows = [][]string{
			{"Outcome", string(v.Outcome)},
			{"Official score", formatScore(v.OfficialScore)},
			{"Alternative score", formatScore(v.AlternativeScore)},
			{"Margin", formatScore(v.Margin)},
			{"Beneficiary bonus", formatScore(v.BeneficiaryBonus)},
			{"Pattern bonus", formatScore(v.PatternBonus)},
			{"Contradictions", fmt.Sprintf("%d/%d validated", v.ContradictionsValidated, v.ContradictionsIdentified)},
			{"Corroborated facts", fmt.Sprintf("%d/%d", v.CorroboratedFacts, v.TotalFacts)},
			{"Confidence", formatScore(v.Confidence)},
		}
	}
	fmt.Fprintln(&b, renderTable(out, []string{"Field", "Value"}, verdictRows, []columnAlignment{alignLeft, alignLeft}))

	_, err := fmt.Fprint(out, b.String())
	return err
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
