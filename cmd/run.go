package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symptoquiz/internal/app"
	"github.com/abhisek/symptoquiz/internal/config"
	"github.com/abhisek/symptoquiz/internal/logging"
	"github.com/abhisek/symptoquiz/internal/share"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	logger.Info("starting",
		zap.String("version", version),
		zap.String("db", cfg.DBPath),
		zap.Bool("save_history", cfg.SaveHistory),
	)

	return app.Run(app.Options{
		Repo:        st.AssessmentRepo(),
		SaveHistory: cfg.SaveHistory,
		Sharer:      newSharer(cfg),
		Logger:      logger,
		NoSplash:    noSplash,
	})
}

// newLogger opens the log file, or returns a no-op logger if it cannot.
func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return logging.Nop()
	}
	return logger
}

func newSharer(cfg *config.Config) share.Sharer {
	return share.Fallback(share.NewClipboard(), share.NewFile(cfg.Share.File))
}
