package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitk-cp/cuibono/internal/domain"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("CUIBONO_ENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LEXICON", "")
	t.Setenv("OUTPUT_FORMAT", "")
	t.Setenv("ANOMALY_LIMIT", "")
	t.Setenv("MIN_VALIDATED_ANOMALIES", "")

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyze_TextReport(t *testing.T) {
	out, _, err := runCLI(t, "analyze", filepath.Join("testdata", "door.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "MOST PROBABLE VERSION:")
	assert.Contains(t, out, "major contradictions validated out of 1 identified")
}

func TestAnalyze_JSONReport(t *testing.T) {
	out, _, err := runCLI(t, "analyze", filepath.Join("testdata", "door.yaml"), "--format", "json")
	require.NoError(t, err)

	var report analysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "Door incident", report.Title)
	assert.Equal(t, lexicon.DefaultName, report.Lexicon)
	require.Len(t, report.Facts, 2)
	for _, f := range report.Facts {
		assert.True(t, f.Corroborated)
		assert.Equal(t, []string{"archive", "witness", "experts"}, f.Sources)
	}
	require.Len(t, report.Contradictions, 1)
	assert.True(t, report.Contradictions[0].Validated)
	assert.InDelta(t, 9.0/11.0, report.Contradictions[0].Incompatibility, 1e-9)

	assert.False(t, report.Verdict.Failed())
	assert.Equal(t, 1, report.Verdict.ContradictionsValidated)
	assert.Equal(t, 2, report.Verdict.TotalFacts)
	require.NotNil(t, report.Verdict.Beneficiaries)
	assert.Equal(t, "Authority A", report.Verdict.Beneficiaries.Ranked()[0].Name)
	assert.True(t, domain.ValidOutcome(string(report.Verdict.Outcome)))
	assert.NotEmpty(t, report.Conclusion)
}

func TestAnalyze_TableReport(t *testing.T) {
	out, _, err := runCLI(t, "analyze", filepath.Join("testdata", "door.yaml"), "--format", "table")
	require.NoError(t, err)

	for _, want := range []string{"Door incident", "Facts", "Contradictions", "Incompatibility", "Beneficiaries", "Authority A", "Verdict", "1/1 validated"} {
		assert.Contains(t, out, want)
	}
}

func TestAnalyze_InsufficientDataWarning(t *testing.T) {
	door := filepath.Join("testdata", "door.yaml")
	const warning = "WARNING: insufficient data for reliable analysis"

	for _, format := range []string{"text", "table"} {
		t.Run(format, func(t *testing.T) {
			sufficient, _, err := runCLI(t, "analyze", door, "--format", format, "--min-anomalies", "0")
			require.NoError(t, err)
			assert.NotContains(t, sufficient, warning)

			insufficient, _, err := runCLI(t, "analyze", door, "--format", format, "--min-anomalies", "100")
			require.NoError(t, err)
			assert.Contains(t, insufficient, warning)
			assert.Contains(t, insufficient, "of 100 required anomalies validated")
			assert.NotEqual(t, sufficient, insufficient)
		})
	}

	out, _, err := runCLI(t, "analyze", door, "--format", "json", "--min-anomalies", "100")
	require.NoError(t, err)
	var report analysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Collection.SufficientData)
}

func TestAnalyze_FormatFromEnvironment(t *testing.T) {
	cmd := newRootCommand()
	t.Setenv("CUIBONO_ENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LEXICON", "")
	t.Setenv("OUTPUT_FORMAT", "json")

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"analyze", filepath.Join("testdata", "door.yaml")})
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(strings.TrimSpace(stdout.String()), "{"))
}

func TestAnalyze_NoSources(t *testing.T) {
	out, _, err := runCLI(t, "analyze", filepath.Join("testdata", "empty.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ANALYSIS IMPOSSIBLE: INSUFFICIENT DATA")

	out, _, err = runCLI(t, "analyze", filepath.Join("testdata", "empty.toml"), "--format", "json")
	require.NoError(t, err)
	var report analysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Verdict.Failed())
	assert.Empty(t, report.Facts)
}

func TestAnalyze_FrenchLexicon(t *testing.T) {
	out, _, err := runCLI(t, "analyze", filepath.Join("testdata", "door.yaml"), "--lexicon", "fr", "--format", "json")
	require.NoError(t, err)

	var report analysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "fr", report.Lexicon)
	// the English statements share no French opposition pair
	assert.Empty(t, report.Contradictions)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"analyze", filepath.Join("testdata", "missing.yaml")}, "load case"},
		{"unknown format", []string{"analyze", filepath.Join("testdata", "door.yaml"), "--format", "xml"}, "unknown output format"},
		{"unknown lexicon", []string{"analyze", filepath.Join("testdata", "door.yaml"), "--lexicon", "de"}, "load lexicon"},
		{"no argument", []string{"analyze"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLexiconCommand(t *testing.T) {
	out, _, err := runCLI(t, "lexicon", "--name", "fr", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "opposition_pairs")
	assert.Contains(t, out, "name = 'fr'")

	out, _, err = runCLI(t, "lexicon")
	require.NoError(t, err)
	assert.Contains(t, out, "name: en")
	assert.Contains(t, out, "anomaly_terms:")

	_, _, err = runCLI(t, "lexicon", "--name", "de")
	assert.ErrorIs(t, err, lexicon.ErrUnknownLexicon)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cuibono "))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)
}
