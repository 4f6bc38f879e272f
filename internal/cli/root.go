// Package cli implements the command-line interface for tesseract.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/tesseract/internal/config"
	"github.com/SeamusWaldron/tesseract/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Set by PersistentPreRunE.
	cfg    config.Config
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "tesseract",
	Short: "4D tesseract puzzle with a nested Rubik's cube",
	Long: `tesseract - A 2x2x2x2 tesseract puzzle and the 3x3x3 Rubik's cube inside it.

Apply slice moves in the six 4D rotation planes (XY0 .. ZW3'), turn the
inner cube with standard notation (R U R' U'), scramble both, play
interactively in the terminal and replay recorded sessions.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Storage.Path = dbPath
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Development)
		if err != nil {
			return err
		}
		logger.Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/tesseract/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.tesseract/tesseract.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
