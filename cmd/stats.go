package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/severity"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many saved assessments fell into each level",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.AssessmentRepo().LevelCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("query level counts: %w", err)
		}
		writeStats(cmd.OutOrStdout(), counts)
		return nil
	},
}

func writeStats(w io.Writer, counts map[severity.Level]int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		fmt.Fprintln(w, "No assessments saved yet.")
		return
	}

	fmt.Fprintf(w, "%-10s  %6s  %6s\n", "Level", "Count", "Share")
	fmt.Fprintln(w, strings.Repeat("─", 26))
	for _, l := range severity.AllLevels() {
		n := counts[l]
		fmt.Fprintf(w, "%-10s  %6d  %5.1f%%\n", l.DisplayName(), n, 100*float64(n)/float64(total))
	}
	fmt.Fprintln(w, strings.Repeat("─", 26))
	fmt.Fprintf(w, "%-10s  %6d\n", "TOTAL", total)
}
