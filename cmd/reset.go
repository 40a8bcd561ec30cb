package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.AssessmentRepo()
		out := cmd.OutOrStdout()

		n, err := repo.Count(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("count assessments: %w", err)
		}
		if n == 0 {
			fmt.Fprintln(out, "Nothing to delete.")
			return nil
		}

		if !yes {
			fmt.Fprintf(out, "Delete %d saved assessments? [y/N] ", n)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
			default:
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		deleted, err := repo.DeleteAll(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d assessments.\n", deleted)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
