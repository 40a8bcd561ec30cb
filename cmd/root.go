package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/symptoquiz/internal/config"
	"github.com/abhisek/symptoquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "symptoquiz",
	Short: "Terminal health self-check",
	Long: `Symptoquiz asks five yes/no symptom questions and tells you whether your
condition looks normal, moderate or critical. It is not a diagnosis.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SYMPTOQUIZ_DB and config)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/symptoquiz/config.yaml)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and .env, then applies the --db flag,
// which wins over every other source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{Path: path, DotEnv: ".env"})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore loads the config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}
