package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
)

var (
	scramblePuzzleMoves int
	scrambleCubeMoves   int
	scrambleSeed        uint64
	scrambleState       string
	scrambleQuiet       bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble both puzzles",
	Long: `Apply random moves to the tesseract and the cube. The same seed always
produces the same scramble. With --state the result is saved to a snapshot
file that apply and project can continue from.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scramblePuzzleMoves, "puzzle-moves", -1, "Tesseract scramble length (default from config)")
	scrambleCmd.Flags().IntVar(&scrambleCubeMoves, "cube-moves", -1, "Cube scramble length (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = configured or random)")
	scrambleCmd.Flags().StringVar(&scrambleState, "state", "", "Snapshot file to load and save")
	scrambleCmd.Flags().BoolVarP(&scrambleQuiet, "quiet", "q", false, "Only print the scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	puzzleMoves, cubeMoves := scramblePuzzleMoves, scrambleCubeMoves
	if puzzleMoves < 0 {
		puzzleMoves = cfg.Scramble.PuzzleMoves
	}
	if cubeMoves < 0 {
		cubeMoves = cfg.Scramble.CubeMoves
	}

	t, err := loadTracker(scrambleState, scrambleSeed)
	if err != nil {
		return err
	}
	slices, moves := t.Scramble(puzzleMoves, cubeMoves)

	if scrambleState != "" {
		if err := snapshot.Save(scrambleState, t); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tesseract: %s\n", tesseract.FormatSliceMoves(slices))
	fmt.Fprintf(out, "Cube:      %s\n", tesseract.FormatMoves(moves))
	if !scrambleQuiet {
		fmt.Fprintln(out)
		fmt.Fprint(out, renderTracker(t))
	}
	if scrambleState != "" {
		printer.Success("Saved to %s\n", scrambleState)
	}
	return nil
}
