package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
)

var (
	applyState string
	applyQuiet bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply moves to the puzzles",
	Long: `Apply a sequence of moves. Tesseract slice moves (XY0, ZW3') and cube
face moves (R, U') may be mixed freely; the sequence is all-or-nothing.

With --state the puzzles are loaded from and saved back to a snapshot file
(.json or .yaml), so moves can be applied across several invocations.`,
	Example: `  tesseract apply XY0 R U "R'" "U'"
  tesseract apply --state puzzle.yaml "ZW3' YW1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "Snapshot file to load and save")
	applyCmd.Flags().BoolVarP(&applyQuiet, "quiet", "q", false, "Do not print the puzzles")
}

func runApply(cmd *cobra.Command, args []string) error {
	t, err := loadTracker(applyState, 0)
	if err != nil {
		return err
	}

	seq := strings.Join(args, " ")
	if err := t.ApplySequence(seq); err != nil {
		return printer.Error("Invalid move sequence", err.Error(),
			"Tesseract moves are a plane (XY XZ XW YZ YW ZW), a layer 0-3 and an optional ' (XY0, ZW3').",
			"Cube moves are a face (R L U D F B) and an optional ' (R, U').")
	}

	if applyState != "" {
		if err := snapshot.Save(applyState, t); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if !applyQuiet {
		fmt.Fprint(out, renderTracker(t))
	}
	if t.IsSolved() {
		printer.Success("Both puzzles solved\n")
	}
	return nil
}
