package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate answers without the TUI",
	Long: `Evaluate a self-check non-interactively.

--answers takes the five symptom answers in question order (see
"symptoquiz questions"), separated by commas. Each answer is yes/no, y/n,
true/false or 1/0. Every question must be answered.`,
	Example: `  symptoquiz evaluate --name Ana --answers yes,no,yes,no,no --medication no`,
	RunE:    runEvaluate,
}

func init() {
	evaluateCmd.Flags().String("name", "", "Your name")
	evaluateCmd.Flags().String("answers", "", "Comma-separated symptom answers")
	evaluateCmd.Flags().String("medication", "", "Taking medication: yes or no")
	evaluateCmd.Flags().Bool("save", false, "Save the result to history")
	evaluateCmd.Flags().Bool("share", false, "Share the result (clipboard, then share file)")
	evaluateCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// evaluation is the JSON shape printed by evaluate --json.
type evaluation struct {
	Name       string   `json:"name"`
	Answers    []string `json:"answers"`
	Medication string   `json:"medication"`
	YesCount   int      `json:"yes_count"`
	Level      string   `json:"level"`
	Message    string   `json:"message"`
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	answers, _ := cmd.Flags().GetString("answers")
	medication, _ := cmd.Flags().GetString("medication")
	save, _ := cmd.Flags().GetBool("save")
	doShare, _ := cmd.Flags().GetBool("share")
	asJSON, _ := cmd.Flags().GetBool("json")

	form, err := buildForm(name, answers, medication)
	if err != nil {
		return err
	}
	result, err := form.Evaluate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeEvaluation(out, form, result, asJSON); err != nil {
		return err
	}

	if !save && !doShare {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if save {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		if err := st.AssessmentRepo().Save(cmd.Context(), store.NewAssessment(form, result)); err != nil {
			return err
		}
		if !asJSON {
			fmt.Fprintln(out, "Saved to history.")
		}
	}

	if doShare {
		receipt, err := newSharer(cfg).Share(cmd.Context(), questionnaire.ShareMessage(form, result))
		if err != nil {
			return fmt.Errorf("share: %w", err)
		}
		if !asJSON {
			fmt.Fprintf(out, "Shared to %s.\n", receipt.Target)
		}
	}
	return nil
}

// buildForm parses the flag values into a form. Missing answers stay
// unanswered so validation can report them; malformed ones are errors.
func buildForm(name, answers, medication string) (questionnaire.Form, error) {
	form := questionnaire.Form{Name: name}

	if strings.TrimSpace(answers) != "" {
		parts := strings.Split(answers, ",")
		if len(parts) > severity.SymptomCount {
			return form, fmt.Errorf("--answers: got %d answers, want %d", len(parts), severity.SymptomCount)
		}
		for i, p := range parts {
			a, err := parseOptional(p)
			if err != nil {
				return form, fmt.Errorf("--answers: question %d: %w", i+1, err)
			}
			form.Symptoms[i] = a
		}
	}

	m, err := parseOptional(medication)
	if err != nil {
		return form, fmt.Errorf("--medication: %w", err)
	}
	form.Medication = m
	return form, nil
}

func parseOptional(s string) (questionnaire.Answer, error) {
	if strings.TrimSpace(s) == "" {
		return questionnaire.Unanswered, nil
	}
	return questionnaire.ParseAnswer(s)
}

func writeEvaluation(w io.Writer, form questionnaire.Form, result questionnaire.Result, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, result.Headline())
		return err
	}

	ev := evaluation{
		Name:       result.Name,
		Answers:    make([]string, 0, len(form.Symptoms)),
		Medication: form.Medication.String(),
		YesCount:   result.YesCount,
		Level:      string(result.Level),
		Message:    result.Headline(),
	}
	for _, a := range form.Symptoms {
		ev.Answers = append(ev.Answers, a.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ev)
}
