package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract/internal/config"
	"github.com/SeamusWaldron/tesseract/internal/printer"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Settings are read from a TOML file (default ~/.config/tesseract/config.toml)
and may be overridden with TESSERACT_* environment variables, for example
TESSERACT_SCRAMBLE_PUZZLE_MOVES=40.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	if _, err := os.Stat(path); err == nil && !configForce {
		return printer.Error("Config file already exists", path,
			"Use --force to overwrite it.")
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	printer.Success("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", resolvedConfigPath())
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "path = %q\n\n", cfg.Storage.Path)
	fmt.Fprintln(out, "[scramble]")
	fmt.Fprintf(out, "puzzle_moves = %d\n", cfg.Scramble.PuzzleMoves)
	fmt.Fprintf(out, "cube_moves = %d\n", cfg.Scramble.CubeMoves)
	fmt.Fprintf(out, "seed = %d\n\n", cfg.Scramble.Seed)
	fmt.Fprintln(out, "[log]")
	fmt.Fprintf(out, "level = %q\n", cfg.Log.Level)
	fmt.Fprintf(out, "development = %t\n\n", cfg.Log.Development)
	fmt.Fprintln(out, "[view]")
	fmt.Fprintf(out, "w_distance = %g\n", cfg.View.WDistance)
	fmt.Fprintf(out, "w_angle = %g\n", cfg.View.WAngle)
	fmt.Fprintf(out, "xy_angle = %g\n", cfg.View.XYAngle)
	return nil
}
