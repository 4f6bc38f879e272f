package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/controller"
	"github.com/SeamusWaldron/tesseract/internal/math4d"
	"github.com/SeamusWaldron/tesseract/internal/recorder"
)

var (
	playNoRecord bool
	playResume   string
	playNotes    string
	playSeed     uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive terminal mode",
	Long: `Play both puzzles interactively in the terminal.

Keyboard shortcuts:
  q w e r t y   - Turn cube face R L U D F B
  z x c v b n   - Turn tesseract plane XY XZ XW YZ YW ZW on the selected layer
  Shift + key   - Counterclockwise
  1-4           - Select layer 0-3
  [ ]           - Rotate the 4D view
  Space         - Reset both puzzles
  u             - Undo
  s             - Scramble
  i             - Toggle help
  Esc/Ctrl+C    - Quit

Moves are recorded to the session database unless --no-record is given.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not record the session")
	playCmd.Flags().StringVar(&playResume, "resume", "", "Resume an unfinished session by ID")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes stored with the session")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Scramble seed (0 = configured or random)")
}

// game is what the interactive model drives: either a recorded session or
// a bare tracker.
type game interface {
	Apply(token string) error
	Undo() (string, error)
	Scramble(puzzleMoves, cubeMoves int) error
	Reset() error
}

// localGame plays on a tracker without recording.
type localGame struct {
	tracker *tesseract.Tracker
}

func (g localGame) Apply(token string) error { return g.tracker.Apply(token) }
func (g localGame) Undo() (string, error)    { return g.tracker.Undo() }
func (g localGame) Reset() error             { g.tracker.Reset(); return nil }
func (g localGame) Scramble(p, c int) error {
	g.tracker.Scramble(p, c)
	return nil
}

// Messages
type tickMsg time.Time

// Model
type playModel struct {
	game    game
	tracker *tesseract.Tracker
	session *recorder.Session // nil when not recording
	ctrl    *controller.Controller

	// Scramble lengths
	puzzleMoves int
	cubeMoves   int

	// View
	wDistance float64
	wAngle    float64
	xyAngle   float64
	showHelp  bool

	// State
	lastMove  string
	solved    []tesseract.Kind
	startTime time.Time
	elapsed   time.Duration
	err       error
	quitting  bool
}

func newPlayModel(g game, t *tesseract.Tracker, s *recorder.Session) *playModel {
	m := &playModel{
		game:        g,
		tracker:     t,
		session:     s,
		ctrl:        controller.New(),
		puzzleMoves: cfg.Scramble.PuzzleMoves,
		cubeMoves:   cfg.Scramble.CubeMoves,
		wDistance:   cfg.View.WDistance,
		wAngle:      cfg.View.WAngle,
		xyAngle:     cfg.View.XYAngle,
		showHelp:    true,
		startTime:   time.Now(),
	}
	if m.wDistance <= 0 {
		m.wDistance = math4d.DefaultWDistance
	}
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg.String())

	case tickMsg:
		m.elapsed = time.Since(m.startTime)
		return m, m.tickCmd()
	}
	return m, nil
}

// handleKey runs one controller action against the game.
func (m *playModel) handleKey(key string) {
	action, err := m.ctrl.HandleKey(key)
	if errors.Is(err, controller.ErrUnknownKey) {
		return
	}
	m.err = nil

	switch action.Type {
	case controller.ActionMove:
		puzzleWas, cubeWas := m.tracker.Puzzle().IsSolved(), m.tracker.Cube().IsSolved()
		if err := m.game.Apply(action.Notation); err != nil {
			m.err = err
			return
		}
		m.lastMove = action.Notation
		m.noteSolved(puzzleWas, cubeWas)

	case controller.ActionUndo:
		notation, err := m.game.Undo()
		if errors.Is(err, tesseract.ErrNothingToUndo) {
			return
		}
		if err != nil {
			m.err = err
			return
		}
		m.lastMove = "undo " + notation

	case controller.ActionScramble:
		if err := m.game.Scramble(m.puzzleMoves, m.cubeMoves); err != nil {
			m.err = err
			return
		}
		m.solved = nil
		m.lastMove = "scramble"

	case controller.ActionReset:
		if err := m.game.Reset(); err != nil {
			m.err = err
			return
		}
		m.solved = nil
		m.lastMove = "reset"

	case controller.ActionToggleHelp:
		m.showHelp = !m.showHelp

	case controller.ActionRotateView:
		m.wAngle += action.ViewDelta

	case controller.ActionSelectLayer:
		// The controller keeps the layer.
	}
}

// noteSolved remembers the puzzles the last move solved.
func (m *playModel) noteSolved(puzzleWas, cubeWas bool) {
	m.solved = nil
	if !puzzleWas && m.tracker.Puzzle().IsSolved() {
		m.solved = append(m.solved, tesseract.KindTesseract)
	}
	if !cubeWas && m.tracker.Cube().IsSolved() {
		m.solved = append(m.solved, tesseract.KindCube)
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tesseract"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Layer: %d   View: %.0f°   Time: %s", m.ctrl.Layer(), m.wAngle, formatDuration(m.elapsed))
	if m.session != nil {
		status += fmt.Sprintf("   Session: %s", shortID(m.session.SessionID()))
	} else {
		status += "   Not recording"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(renderTracker(m.tracker))
	b.WriteString("\n")

	view := math4d.ViewRotation(m.xyAngle, m.wAngle)
	b.WriteString(renderPlot(frameFor(m.tracker).Projected(view, m.wDistance)))
	b.WriteString("\n")

	history := m.tracker.History()
	b.WriteString(fmt.Sprintf("Moves: %d", len(history)))
	if m.lastMove != "" {
		b.WriteString("   Last: " + moveStyle.Render(m.lastMove))
	}
	b.WriteString("\n")

	if m.tracker.IsSolved() && len(history) > 0 {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		b.WriteString("\n")
	} else if len(m.solved) > 0 {
		names := make([]string, len(m.solved))
		for i, k := range m.solved {
			names[i] = k.String()
		}
		b.WriteString(solvedStyle.Render(strings.Join(names, " and ") + " solved"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(controller.Help()))
		b.WriteString("\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runPlay(cmd *cobra.Command, args []string) error {
	tracker := tesseract.NewTracker(trackerOptions(playSeed)...)

	if playNoRecord {
		m := newPlayModel(localGame{tracker: tracker}, tracker, nil)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session := recorder.NewSession(db, tracker, logger)
	if playResume != "" {
		err = session.Resume(playResume)
	} else {
		_, err = session.Start(playNotes)
	}
	if err != nil {
		return err
	}

	m := newPlayModel(session, tracker, session)
	_, runErr := tea.NewProgram(m, tea.WithAltScreen()).Run()

	if err := session.End(); err != nil {
		logger.Warn("failed to end session", zap.Error(err))
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Session %s saved (%d moves, solved: %s)\n",
		shortID(session.SessionID()), session.MoveCount(), yesNo(tracker.IsSolved()))
	return nil
}
