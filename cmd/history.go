package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		level, _ := cmd.Flags().GetString("level")
		asJSON, _ := cmd.Flags().GetBool("json")

		if level != "" && !severity.Level(level).Valid() {
			return fmt.Errorf("invalid --level %q: want normal, moderate or critical", level)
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.AssessmentRepo().List(cmd.Context(), store.QueryOpts{Limit: limit, Level: level})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		if asJSON {
			return writeHistoryJSON(cmd.OutOrStdout(), list)
		}
		writeHistory(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of assessments to show (0 = all)")
	historyCmd.Flags().String("level", "", "Only show this level (normal, moderate, critical)")
	historyCmd.Flags().Bool("json", false, "Print as JSON")
}

func writeHistory(w io.Writer, list []store.Assessment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No assessments found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-16s  %-20s  %-9s  %-5s  %-19s  %s\n",
		"Seq", "Time", "Name", "Level", "Yes", "Answers", "Meds")
	fmt.Fprintln(w, strings.Repeat("─", 92))

	for _, a := range list {
		name := a.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Fprintf(w, "%-5d  %-16s  %-20s  %-9s  %d/%d    %-19s  %s\n",
			a.Sequence,
			a.Timestamp.Local().Format("2006-01-02 15:04"),
			name,
			a.Level.DisplayName(),
			a.YesCount, severity.SymptomCount,
			strings.Join(a.Symptoms, ","),
			a.Medication,
		)
	}

	fmt.Fprintf(w, "\n%d assessments\n", len(list))
}

// historyEntry is the JSON shape of one saved assessment.
type historyEntry struct {
	ID         string   `json:"id"`
	Sequence   int64    `json:"sequence"`
	Timestamp  string   `json:"timestamp"`
	Name       string   `json:"name"`
	Answers    []string `json:"answers"`
	Medication string   `json:"medication"`
	YesCount   int      `json:"yes_count"`
	Level      string   `json:"level"`
}

func writeHistoryJSON(w io.Writer, list []store.Assessment) error {
	entries := make([]historyEntry, 0, len(list))
	for _, a := range list {
		entries = append(entries, historyEntry{
			ID:         a.ID,
			Sequence:   a.Sequence,
			Timestamp:  a.Timestamp.UTC().Format(time.RFC3339),
			Name:       a.Name,
			Answers:    a.Symptoms,
			Medication: a.Medication,
			YesCount:   a.YesCount,
			Level:      string(a.Level),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
