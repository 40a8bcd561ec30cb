package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/store"
)

// --- Pure function tests ---

func TestBuildForm(t *testing.T) {
	tests := []struct {
		name       string
		answers    string
		medication string
		wantErr    bool
		wantLevel  severity.Level
		incomplete bool
	}{
		{"critical", "yes,yes,yes,yes,no", "no", false, severity.LevelCritical, false},
		{"moderate", "y,n,y,n,n", "yes", false, severity.LevelModerate, false},
		{"normal", "1,0,0,0,0", "false", false, severity.LevelNormal, false},
		{"mixed case", "YES,No,TRUE,n,0", "N", false, severity.LevelModerate, false},
		{"too many", "yes,yes,yes,yes,yes,yes", "no", true, "", false},
		{"bad word", "yes,maybe,no,no,no", "no", true, "", false},
		{"bad medication", "yes,no,no,no,no", "sometimes", true, "", false},
		{"short list", "yes,no", "no", false, "", true},
		{"gap", "yes,,no,no,no", "no", false, "", true},
		{"no medication", "yes,no,no,no,no", "", false, "", true},
		{"nothing", "", "", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := buildForm("Rei", tt.answers, tt.medication)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			require.NoError(t, err)

			result, err := form.Evaluate()
			if tt.incomplete {
				assert.ErrorIs(t, err, questionnaire.ErrIncomplete)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, result.Level)
		})
	}
}

func TestWriteEvaluationText(t *testing.T) {
	form, err := buildForm("Rei", "yes,yes,yes,yes,yes", "no")
	require.NoError(t, err)
	result, err := form.Evaluate()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeEvaluation(&buf, form, result, false))
	assert.Equal(t, "Rei, your condition is critical. Please seek medical help immediately.\n", buf.String())
}

func TestWriteEvaluationJSON(t *testing.T) {
	form, err := buildForm("Rei", "yes,no,yes,no,no", "yes")
	require.NoError(t, err)
	result, err := form.Evaluate()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeEvaluation(&buf, form, result, true))

	var got evaluation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Rei", got.Name)
	assert.Equal(t, []string{"Yes", "No", "Yes", "No", "No"}, got.Answers)
	assert.Equal(t, "Yes", got.Medication)
	assert.Equal(t, 2, got.YesCount)
	assert.Equal(t, "moderate", got.Level)
	assert.Contains(t, got.Message, "moderate")
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	writeHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No assessments found")

	buf.Reset()
	writeHistory(&buf, []store.Assessment{{
		Sequence:   7,
		Timestamp:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Name:       "A very long name that will not fit",
		Symptoms:   []string{"Yes", "Yes", "No", "No", "No"},
		Medication: "No",
		YesCount:   2,
		Level:      severity.LevelModerate,
	}})
	out := buf.String()
	assert.Contains(t, out, "Moderate")
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "A very long name ...")
	assert.Contains(t, out, "1 assessments")
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	writeStats(&buf, map[severity.Level]int{})
	assert.Contains(t, buf.String(), "No assessments saved yet")

	buf.Reset()
	writeStats(&buf, map[severity.Level]int{
		severity.LevelNormal:   2,
		severity.LevelCritical: 2,
	})
	out := buf.String()
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "0.0%")
	assert.Regexp(t, `TOTAL\s+4`, out)
}

// --- Command tests ---

// resetFlags restores every flag to its default so tests sharing the
// package-level commands do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with an isolated config dir and database.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("SYMPTOQUIZ_DB", "")
	t.Setenv("SYMPTOQUIZ_SAVE_HISTORY", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvaluateCommand(t *testing.T) {
	out, err := run(t, "", "evaluate", "--name", "Ana", "--answers", "yes,no,yes,no,no", "--medication", "no")
	require.NoError(t, err)
	assert.Equal(t, "Ana, your condition is moderate. Rest and monitor your symptoms.\n", out)
}

func TestEvaluateCommandIncomplete(t *testing.T) {
	_, err := run(t, "", "evaluate", "--name", " ", "--answers", "yes,no", "--medication", "no")
	require.Error(t, err)
	assert.True(t, errors.Is(err, questionnaire.ErrIncomplete))

	var inc *questionnaire.IncompleteError
	require.ErrorAs(t, err, &inc)
	assert.Contains(t, inc.Missing, questionnaire.FieldName)
}

func TestSaveHistoryStatsReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	// run resets flags, so each call passes --db again.
	_, err := run(t, "", "--db", db, "evaluate", "--name", "Ana", "--answers", "y,y,y,y,y", "--medication", "n", "--save")
	require.NoError(t, err)
	_, err = run(t, "", "--db", db, "evaluate", "--name", "Ben", "--answers", "n,n,n,n,n", "--medication", "y", "--save")
	require.NoError(t, err)

	out, err := run(t, "", "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Ben")
	assert.Less(t, strings.Index(out, "Ben"), strings.Index(out, "Ana"), "newest first")

	out, err = run(t, "", "--db", db, "history", "--json", "--level", "critical")
	require.NoError(t, err)
	var entries []historyEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0].Name)
	assert.Equal(t, 5, entries[0].YesCount)

	out, err = run(t, "", "--db", db, "stats")
	require.NoError(t, err)
	assert.Regexp(t, `TOTAL\s+2`, out)

	out, err = run(t, "n\n", "--db", db, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")

	out, err = run(t, "y\n", "--db", db, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 assessments")

	out, err = run(t, "", "--db", db, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to delete")
}

func TestHistoryInvalidLevel(t *testing.T) {
	_, err := run(t, "", "history", "--level", "severe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --level")
}

func TestQuestionsCommand(t *testing.T) {
	out, err := run(t, "", "questions")
	require.NoError(t, err)
	for _, q := range questionnaire.Symptoms() {
		assert.Contains(t, out, q.Prompt)
	}
	assert.Contains(t, out, "4 yes → Critical")
	assert.Contains(t, out, "1 yes → Normal")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "symptoquiz (devel)\n", out)
}

func TestLoadConfigDBFlagWins(t *testing.T) {
	db := filepath.Join(t.TempDir(), "flag.db")
	_, err := run(t, "", "--db", db, "history")
	require.NoError(t, err)
	assert.FileExists(t, db)
}
