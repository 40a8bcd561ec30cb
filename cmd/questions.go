package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/severity"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions in --answers order and the scoring tiers",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-3s  %-12s  %s\n", "#", "ID", "Question")
		for i, q := range questionnaire.Symptoms() {
			fmt.Fprintf(out, "%-3d  %-12s  %s\n", i+1, q.ID, q.Prompt)
		}
		fmt.Fprintf(out, "%-3s  %-12s  %s (not scored)\n", "-", questionnaire.Medication.ID, questionnaire.Medication.Prompt)

		fmt.Fprintln(out)
		for n := 0; n <= severity.SymptomCount; n++ {
			fmt.Fprintf(out, "%d yes → %s\n", n, severity.FromCount(n).DisplayName())
		}
	},
}
