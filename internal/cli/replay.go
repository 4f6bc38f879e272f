package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/recorder"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

var (
	replayLast  bool
	replaySave  string
	replayQuiet bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Rebuild the final state of a recorded session",
	Long: `Replay a session's recorded moves, undos and resets from a solved start
and print the resulting puzzles. With --save the rebuilt state is written to
a snapshot file that apply, scramble and project can continue from.

Use --last (or omit the ID) to replay the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().StringVar(&replaySave, "save", "", "Write the rebuilt state to a snapshot file")
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "Do not print the puzzles")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(db, firstArg(args), replayLast)
	if err != nil {
		return err
	}

	t, next, err := recorder.Rebuild(storage.NewMoveRepository(db), storage.NewEventRepository(db), session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to replay session %s: %w", session.SessionID, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s: %d recorded moves, %d in effect\n", shortID(session.SessionID), next, len(t.History()))
	if !replayQuiet {
		fmt.Fprintln(out)
		fmt.Fprint(out, renderTracker(t))
	}
	fmt.Fprintf(out, "Solved: %s\n", yesNo(t.IsSolved()))

	if replaySave != "" {
		if err := snapshot.Save(replaySave, t); err != nil {
			return err
		}
		printer.Success("Saved to %s\n", replaySave)
	}
	return nil
}
