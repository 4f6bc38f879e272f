package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract/internal/analysis"
	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

var (
	listLimit   int
	showLast    bool
	statsLast   bool
	statsJSON   bool
	statsNGrams int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded play sessions",
	Long:  `Commands for listing, inspecting and deleting recorded play sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a session's metadata, scramble and move sequence. IDs may be
abbreviated to any unique prefix.

Use --last to show the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var sessionsStatsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Analyze a session",
	Long: `Compute statistics for a session: move counts per puzzle, undos,
turns per second, pauses, cancelled move pairs and the most repeated
move sequences.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsStats,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")

	sessionsCmd.AddCommand(sessionsDeleteCmd)

	sessionsCmd.AddCommand(sessionsStatsCmd)
	sessionsStatsCmd.Flags().BoolVar(&statsLast, "last", false, "Analyze the most recent session")
	sessionsStatsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the summary as JSON")
	sessionsStatsCmd.Flags().IntVar(&statsNGrams, "ngrams", 3, "Repeated sequences to show per length (0 disables)")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	sessions, err := sessionRepo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start one with: tesseract play")
		return nil
	}

	fmt.Fprintf(out, "Recent sessions (showing %d):\n\n", len(sessions))
	fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "Solved", "Notes")
	fmt.Fprintln(out, "------------------------------------  -------------------  ----------  ------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		moves := "-"
		if n, err := moveRepo.Count(s.SessionID); err == nil && n > 0 {
			moves = fmt.Sprintf("%d", n)
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}
		if s.EndedAt == nil {
			notes += " (active)"
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6s  %-6s  %s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			moves,
			yesNo(s.Solved),
			notes,
		)
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(db, firstArg(args), showLast)
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	events, err := storage.NewEventRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Session Details")
	fmt.Fprintln(out, "===============")
	fmt.Fprintln(out)
	printSessionHeader(out, session)
	fmt.Fprintln(out)

	if len(events) > 0 {
		fmt.Fprintln(out, "Events")
		fmt.Fprintln(out, "------")
		start := session.StartedAt.UnixMilli()
		for _, e := range events {
			offset := time.Duration(e.TsMs-start) * time.Millisecond
			fmt.Fprintf(out, "  %-10s %-9s %s\n", formatDuration(offset), e.EventType, e.PayloadJSON)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Moves")
	fmt.Fprintln(out, "-----")
	if len(records) == 0 {
		fmt.Fprintln(out, "  (none)")
		return nil
	}
	var notations []string
	for _, r := range records {
		switch {
		case r.Undo:
			notations = append(notations, "undo:"+r.Notation)
		case r.Scramble:
			notations = append(notations, "*"+r.Notation)
		default:
			notations = append(notations, r.Notation)
		}
	}
	for _, line := range wrapMoves(notations, 60) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, statusStyle.Render("* scramble move"))
	return nil
}

func printSessionHeader(out io.Writer, s *storage.Session) {
	fmt.Fprintf(out, "ID:       %s\n", s.SessionID)
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Fprintf(out, "Ended:    %s\n", s.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if s.DurationMs != nil {
		fmt.Fprintf(out, "Duration: %s\n", formatDuration(time.Duration(*s.DurationMs)*time.Millisecond))
	}
	fmt.Fprintf(out, "Solved:   %s\n", yesNo(s.Solved))
	if s.ScrambleText != nil && *s.ScrambleText != "" {
		fmt.Fprintf(out, "Scramble: %s\n", *s.ScrambleText)
	}
	if s.Notes != nil && *s.Notes != "" {
		fmt.Fprintf(out, "Notes:    %s\n", *s.Notes)
	}
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	session, err := sessionRepo.Get(args[0])
	if err != nil {
		return err
	}
	if err := sessionRepo.Delete(session.SessionID); err != nil {
		return err
	}
	printer.Success("Deleted session %s\n", session.SessionID)
	return nil
}

func runSessionsStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(db, firstArg(args), statsLast)
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	summary := analysis.Summarize(*session, records)
	var ngrams *analysis.NGramReport
	if statsNGrams > 0 {
		var played []analysis.TimedMove
		for _, r := range records {
			if !r.Scramble && !r.Undo {
				played = append(played, analysis.TimedMove{Notation: r.Notation, TsMs: r.TsMs})
			}
		}
		ngrams = analysis.MineNGrams(played, 2, 6, statsNGrams)
	}

	out := cmd.OutOrStdout()
	if statsJSON {
		data, err := json.MarshalIndent(struct {
			Summary *analysis.SessionSummary `json:"summary"`
			NGrams  *analysis.NGramReport    `json:"ngrams,omitempty"`
		}{summary, ngrams}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printSessionHeader(out, session)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Statistics")
	fmt.Fprintln(out, "----------")
	fmt.Fprintf(out, "Moves:         %d (%d tesseract, %d cube)\n", summary.TotalMoves, summary.TesseractMoves, summary.CubeMoves)
	fmt.Fprintf(out, "Scramble:      %d\n", summary.ScrambleMoves)
	fmt.Fprintf(out, "Undos:         %d\n", summary.Undos)
	fmt.Fprintf(out, "Net moves:     %d (%d after cancelling, %.0f%%)\n", summary.NetMoves, summary.OptimizedMoves, summary.Efficiency*100)
	fmt.Fprintf(out, "Cancellations: %d\n", summary.Cancellations)
	fmt.Fprintf(out, "TPS:           %.2f\n", summary.TPSOverall)
	fmt.Fprintf(out, "Longest pause: %s\n", formatDuration(time.Duration(summary.LongestPauseMs)*time.Millisecond))
	fmt.Fprintf(out, "Pauses > 1.5s: %d\n", summary.PauseCountOver1500)

	if p := summary.Profile; p != nil && p.MostUsedPlane+p.MostUsedFace != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Most used plane: %s   face: %s   layers: %v\n", orDash(p.MostUsedPlane), orDash(p.MostUsedFace), p.LayerCounts)
	}

	if ngrams != nil && len(ngrams.TopNGrams) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Repeated sequences")
		fmt.Fprintln(out, "------------------")
		for n := 2; n <= 6; n++ {
			for _, ng := range ngrams.TopNGrams[n] {
				fmt.Fprintf(out, "  %dx  %s\n", ng.Count, moveStyle.Render(fmt.Sprint(ng.Sequence)))
			}
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
