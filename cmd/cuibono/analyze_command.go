package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/cuibono/internal/casefile"
	"github.com/Harshitk-cp/cuibono/internal/config"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
	"github.com/Harshitk-cp/cuibono/internal/service"
)

const (
	outputText  = "text"
	outputTable = "table"
	outputJSON  = "json"
)

type analyzeOptions struct {
	lexicon      string
	format       string
	anomalyLimit int
	minAnomalies int
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	opts := analyzeOptions{anomalyLimit: -1, minAnomalies: -1}

	cmd := &cobra.Command{
		Use:   "analyze <case-file>",
		Short: "Analyze a case file and print the most probable version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, ctx.loggerValue(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.lexicon, "lexicon", "", "Built-in lexicon name or lexicon file path (default from LEXICON)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text, table or json (default from OUTPUT_FORMAT)")
	cmd.Flags().IntVar(&opts.anomalyLimit, "anomaly-limit", -1, "Anomalous statements scored per collection (default from ANOMALY_LIMIT)")
	cmd.Flags().IntVar(&opts.minAnomalies, "min-anomalies", -1, "Validated anomalies required for sufficient data (default from MIN_VALIDATED_ANOMALIES)")
	return cmd
}

func (o analyzeOptions) resolve() analyzeOptions {
	if strings.TrimSpace(o.lexicon) == "" {
		o.lexicon = config.Lexicon()
	}
	if strings.TrimSpace(o.format) == "" {
		o.format = config.OutputFormat()
	}
	o.format = strings.ToLower(strings.TrimSpace(o.format))
	if o.anomalyLimit < 0 {
		o.anomalyLimit = config.AnomalyLimit()
	}
	if o.minAnomalies < 0 {
		o.minAnomalies = config.MinValidatedAnomalies()
	}
	return o
}

func runAnalyze(cmd *cobra.Command, logger *zap.Logger, path string, opts analyzeOptions) error {
	opts = opts.resolve()
	switch opts.format {
	case outputText, outputTable, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want text, table or json)", opts.format)
	}

	lex, err := lexicon.Load(opts.lexicon)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	c, err := casefile.Load(path)
	if err != nil {
		return fmt.Errorf("load case: %w", err)
	}

	session := service.NewMemorySession(lex, logger.With(zap.String("case", path)))
	session.AnomalyLimit = opts.anomalyLimit
	session.MinValidatedAnomalies = opts.minAnomalies

	stats := session.Collect(c.Sources)
	session.DetectContradictions()

	if opts.format == outputText {
		out := cmd.OutOrStdout()
		if !stats.SufficientData {
			fmt.Fprintf(out, "%s\n\n", insufficientDataWarning(stats, session.MinValidatedAnomalies))
		}
		_, err := fmt.Fprintln(out, session.RenderConclusion(c.Actors, c.Events))
		return err
	}

	report := newAnalysisReport(session, c, lex.Name(), stats)
	if opts.format == outputJSON {
		return writeJSON(cmd, report)
	}
	return printReportTables(cmd, report, session.MinValidatedAnomalies)
}

// insufficientDataWarning is printed ahead of the conclusion when fewer
// anomalies were validated than the configured minimum.
func insufficientDataWarning(stats service.CollectionStats, minValidated int) string {
	return fmt.Sprintf("WARNING: insufficient data for reliable analysis (%d of %d required anomalies validated, %d detected)",
		stats.AnomaliesValidated, minValidated, stats.AnomaliesDetected)
}
