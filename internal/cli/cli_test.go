package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/analysis"
	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/recorder"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

// testEnv points the CLI at a temporary config and database.
type testEnv struct {
	dir    string
	dbPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TESSERACT_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("TESSERACT_LOG_LEVEL", "error")
	return &testEnv{dir: dir, dbPath: filepath.Join(dir, "tesseract.db")}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command and returns stdout plus printer output.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, msgs bytes.Buffer
	printer.Out, printer.ErrOut = &msgs, &msgs
	t.Cleanup(func() { printer.Out, printer.ErrOut = os.Stdout, os.Stderr })

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&msgs)
	rootCmd.SetArgs(append([]string{"--db", e.dbPath}, args...))
	err := rootCmd.Execute()
	return out.String() + msgs.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestApplyWithState(t *testing.T) {
	env := newTestEnv(t)
	state := filepath.Join(env.dir, "puzzle.yaml")

	out := env.mustRun(t, "apply", "--state", state, "XY0", "R")
	assert.Contains(t, out, "Tesseract")
	assert.Contains(t, out, "scrambled")

	loaded, err := snapshot.Load(state)
	require.NoError(t, err)
	assert.Len(t, loaded.History(), 2)

	out = env.mustRun(t, "apply", "-q", "--state", state, "R'", "XY0'")
	assert.Contains(t, out, "Both puzzles solved")
}

func TestApplyRejectsBadSequence(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "apply", "XY0", "Q9")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid move sequence")
}

func TestScrambleIsReproducible(t *testing.T) {
	env := newTestEnv(t)
	args := []string{"scramble", "-q", "--seed", "7", "--puzzle-moves", "5", "--cube-moves", "3"}

	first := env.mustRun(t, args...)
	second := env.mustRun(t, args...)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(strings.TrimPrefix(lines[0], "Tesseract:")), 5)
	assert.Len(t, strings.Fields(strings.TrimPrefix(lines[1], "Cube:")), 3)
}

func TestSessionCommands(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "sessions", "list")
	assert.Contains(t, out, "No sessions recorded yet")

	db, err := storage.OpenMigrated(env.dbPath, nil)
	require.NoError(t, err)
	session := recorder.NewSession(db, tesseract.NewTracker(), nil)
	id, err := session.Start("warmup")
	require.NoError(t, err)
	require.NoError(t, session.Apply("XY0"))
	require.NoError(t, session.Apply("R"))
	require.NoError(t, session.Apply("U"))
	_, err = session.Undo()
	require.NoError(t, err)
	require.NoError(t, session.End())
	require.NoError(t, db.Close())

	out = env.mustRun(t, "sessions", "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "warmup")

	out = env.mustRun(t, "sessions", "show", id[:8])
	assert.Contains(t, out, "XY0 R U undo:U")
	assert.Contains(t, out, "Notes:    warmup")

	out = env.mustRun(t, "replay", "--last", "-q")
	assert.Contains(t, out, "4 recorded moves, 2 in effect")
	assert.Contains(t, out, "Solved: no")

	out = env.mustRun(t, "sessions", "stats", "--last", "--json")
	var report struct {
		Summary analysis.SessionSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Summary.TotalMoves)
	assert.Equal(t, 1, report.Summary.Undos)
	assert.Equal(t, 2, report.Summary.NetMoves)

	out = env.mustRun(t, "export", "moves", "--last")
	assert.Equal(t, "XY0 R U U'\n", out)

	out = env.mustRun(t, "export", "snapshot", "--id", id, "--format", "yaml")
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "notation: XY0")

	out = env.mustRun(t, "sessions", "delete", id)
	assert.Contains(t, out, "Deleted session")
	out = env.mustRun(t, "sessions", "list")
	assert.Contains(t, out, "No sessions recorded yet")
}

func TestProject(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "project", "--plot-only")
	assert.Contains(t, out, "o")
	assert.NotContains(t, out, "Projected vertices")

	out = env.mustRun(t, "project", "--preview", "XY0", "--progress", "0.25", "--w-angle", "0")
	assert.Contains(t, out, "Preview: XY0 at 25%")
	assert.Contains(t, out, "Projected vertices")

	_, err := env.run(t, "project", "--progress", "2")
	assert.Error(t, err)
	_, err = env.run(t, "project", "--w-distance=-1")
	assert.Error(t, err)
	_, err = env.run(t, "project", "--preview", "Q9")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "config", "show")
	assert.Contains(t, out, "puzzle_moves = 30")
	assert.Contains(t, out, "w_distance = 4")

	path := filepath.Join(env.dir, "config.toml")
	env.mustRun(t, "config", "init")
	_, err := os.Stat(path)
	require.NoError(t, err)

	_, err = env.run(t, "config", "init")
	assert.Error(t, err)
	env.mustRun(t, "config", "init", "--force")
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestPlayModel(t *testing.T) {
	tr := tesseract.NewTracker(tesseract.WithSeed(1))
	m := newPlayModel(localGame{tracker: tr}, tr, nil)
	m.puzzleMoves, m.cubeMoves = 4, 4

	for _, k := range []string{"q", "2", "z", "N"} {
		m.Update(keyMsg(k))
	}
	var got []string
	for _, s := range tr.History() {
		got = append(got, s.Notation)
	}
	assert.Equal(t, []string{"R", "XY1", "ZW1'"}, got)
	assert.Equal(t, 1, m.ctrl.Layer())
	assert.Contains(t, m.View(), "Layer: 1")

	m.Update(keyMsg("u"))
	assert.Equal(t, "undo ZW1'", m.lastMove)
	assert.Len(t, tr.History(), 2)

	m.Update(keyMsg("Z"))
	assert.Equal(t, []tesseract.Kind{tesseract.KindTesseract}, m.solved)
	m.Update(keyMsg("Q"))
	assert.Equal(t, []tesseract.Kind{tesseract.KindCube}, m.solved)
	assert.True(t, tr.IsSolved())
	assert.Contains(t, m.View(), "SOLVED!")

	m.Update(keyMsg("s"))
	assert.Len(t, tr.History(), 12)
	assert.Empty(t, m.solved)
	m.Update(keyMsg(" "))
	assert.True(t, tr.IsSolved())
	assert.Empty(t, tr.History())

	angle := m.wAngle
	m.Update(keyMsg("]"))
	assert.InDelta(t, angle+5, m.wAngle, 1e-9)

	assert.Contains(t, m.View(), "space: reset")
	m.Update(keyMsg("i"))
	assert.NotContains(t, m.View(), "space: reset")

	m.Update(keyMsg("%"))
	assert.NoError(t, m.err)

	_, cmd := m.Update(keyMsg("esc"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "Goodbye!\n", m.View())
}

func TestWrapMoves(t *testing.T) {
	assert.Equal(t, []string{"XY0 R", "U'"}, wrapMoves([]string{"XY0", "R", "U'"}, 6))
	assert.Nil(t, wrapMoves(nil, 10))
}
