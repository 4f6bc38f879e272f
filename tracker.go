package tesseract

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

// Kind identifies which of the two puzzles a move applies to.
type Kind int

const (
	KindTesseract Kind = iota
	KindCube
)

func (k Kind) String() string {
	switch k {
	case KindTesseract:
		return "tesseract"
	case KindCube:
		return "cube"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tesseract":
		return KindTesseract, nil
	case "cube":
		return KindCube, nil
	default:
		return 0, fmt.Errorf("tesseract: unknown puzzle kind %q", s)
	}
}

// Step is one applied move in a Tracker's history.
type Step struct {
	Kind     Kind
	Notation string
	Scramble bool // applied by Scramble rather than by the player
}

// Tracker owns a tesseract puzzle and the nested cube side by side. It
// dispatches move tokens to the right puzzle, keeps a history for undo
// and reports when a puzzle becomes solved.
type Tracker struct {
	puzzle *Puzzle
	cube   *Cube

	history        []Step
	cfg            *config
	solvedCallback func(kind Kind)
}

// NewTracker creates a tracker with both puzzles solved.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand(0)
	}
	return &Tracker{
		puzzle: NewPuzzle(),
		cube:   NewCube(),
		cfg:    cfg,
	}
}

// SetSolvedCallback sets a callback that fires when a move takes a
// puzzle from unsolved to solved.
func (t *Tracker) SetSolvedCallback(cb func(kind Kind)) {
	t.solvedCallback = cb
}

// Puzzle returns the tesseract for inspection.
func (t *Tracker) Puzzle() *Puzzle {
	return t.puzzle
}

// Cube returns the nested cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// Rand returns the random source used for scrambles.
func (t *Tracker) Rand() *rand.Rand {
	return t.cfg.rng
}

// step is a parsed token ready to apply.
type step struct {
	kind  Kind
	slice SliceMove
	move  Move
}

func (s step) notation() string {
	if s.kind == KindTesseract {
		return s.slice.Notation()
	}
	return s.move.Notation()
}

func (s step) inverse() step {
	s.slice = s.slice.Inverse()
	s.move = s.move.Inverse()
	return s
}

// parseToken recognizes a tesseract code by its plane prefix and falls
// back to cube notation otherwise.
func parseToken(token string) (step, error) {
	if IsSliceMoveCode(token) {
		m, err := ParseSliceMove(token)
		if err != nil {
			return step{}, err
		}
		return step{kind: KindTesseract, slice: m}, nil
	}
	m, err := ParseMove(token)
	if err != nil {
		return step{}, err
	}
	return step{kind: KindCube, move: m}, nil
}

func (t *Tracker) apply(s step, scramble, record bool) {
	wasSolved := t.solved(s.kind)

	switch s.kind {
	case KindTesseract:
		t.puzzle.rotate(s.slice.Plane, s.slice.Layer, s.slice.Clockwise)
	case KindCube:
		t.cube.turn(s.move)
	}

	if record && t.cfg.moveHistory {
		t.history = append(t.history, Step{Kind: s.kind, Notation: s.notation(), Scramble: scramble})
	}

	if !scramble {
		t.cfg.logger.Debug("move applied",
			zap.String("puzzle", s.kind.String()),
			zap.String("move", s.notation()))
	}

	if !scramble && !wasSolved && t.solved(s.kind) && t.solvedCallback != nil {
		t.solvedCallback(s.kind)
	}
}

func (t *Tracker) solved(kind Kind) bool {
	if kind == KindTesseract {
		return t.puzzle.IsSolved()
	}
	return t.cube.IsSolved()
}

// Apply applies a single tesseract or cube token such as "XY0'" or "R".
// Nothing changes when the token is invalid.
func (t *Tracker) Apply(token string) error {
	s, err := parseToken(token)
	if err != nil {
		return err
	}
	t.apply(s, false, true)
	return nil
}

// ApplyScrambleMove applies a single token as part of a scramble. It is
// recorded as a scramble step and never fires the solved callback.
func (t *Tracker) ApplyScrambleMove(token string) error {
	s, err := parseToken(token)
	if err != nil {
		return err
	}
	t.apply(s, true, true)
	return nil
}

// ParseStep parses a tesseract or cube token into a history entry with
// canonical notation, so "XY0`" becomes "XY0'".
func ParseStep(token string) (Step, error) {
	s, err := parseToken(token)
	if err != nil {
		return Step{}, err
	}
	return Step{Kind: s.kind, Notation: s.notation()}, nil
}

// ApplySequence applies a space-separated sequence of tokens. Every token
// is validated before any is applied.
func (t *Tracker) ApplySequence(seq string) error {
	tokens := strings.Fields(seq)
	steps := make([]step, 0, len(tokens))
	for _, tok := range tokens {
		s, err := parseToken(tok)
		if err != nil {
			return err
		}
		steps = append(steps, s)
	}
	for _, s := range steps {
		t.apply(s, false, true)
	}
	return nil
}

// RotateSlice applies a tesseract slice move.
func (t *Tracker) RotateSlice(m SliceMove) error {
	if _, err := SliceIndices(m.Plane, m.Layer); err != nil {
		return err
	}
	t.apply(step{kind: KindTesseract, slice: m}, false, true)
	return nil
}

// RotateFace applies a cube face move.
func (t *Tracker) RotateFace(m Move) error {
	if !m.Face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, int(m.Face))
	}
	t.apply(step{kind: KindCube, move: m}, false, true)
	return nil
}

// Undo reverts the most recent history entry and returns its notation.
func (t *Tracker) Undo() (string, error) {
	if len(t.history) == 0 {
		return "", ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	s, err := parseToken(last.Notation)
	if err != nil {
		return "", fmt.Errorf("corrupt history entry %q: %w", last.Notation, err)
	}
	t.apply(s.inverse(), last.Scramble, false)

	t.cfg.logger.Debug("move undone",
		zap.String("puzzle", last.Kind.String()),
		zap.String("move", last.Notation))
	return last.Notation, nil
}

// Scramble applies puzzleMoves random slice moves to the tesseract and
// cubeMoves random face moves to the cube.
func (t *Tracker) Scramble(puzzleMoves, cubeMoves int) ([]SliceMove, []Move) {
	slices := make([]SliceMove, 0, max(puzzleMoves, 0))
	for i := 0; i < puzzleMoves; i++ {
		m := SliceMove{
			Plane:     Planes[t.cfg.rng.IntN(NumPlanes)],
			Layer:     t.cfg.rng.IntN(NumLayers),
			Clockwise: t.cfg.rng.IntN(2) == 0,
		}
		t.apply(step{kind: KindTesseract, slice: m}, true, true)
		slices = append(slices, m)
	}

	moves := make([]Move, 0, max(cubeMoves, 0))
	for i := 0; i < cubeMoves; i++ {
		m := AllMoves[t.cfg.rng.IntN(len(AllMoves))]
		t.apply(step{kind: KindCube, move: m}, true, true)
		moves = append(moves, m)
	}

	t.cfg.logger.Debug("scrambled",
		zap.String("tesseract", FormatSliceMoves(slices)),
		zap.String("cube", FormatMoves(moves)))
	return slices, moves
}

// Reset restores both puzzles to solved and clears the history.
func (t *Tracker) Reset() {
	t.puzzle.Reset()
	t.cube.Reset()
	t.history = nil
}

// History returns a copy of the applied steps, oldest first.
func (t *Tracker) History() []Step {
	out := make([]Step, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if both puzzles are solved.
func (t *Tracker) IsSolved() bool {
	return t.puzzle.IsSolved() && t.cube.IsSolved()
}

// GetProgress returns the progress of both puzzles.
func (t *Tracker) GetProgress() Progress {
	return GetProgress(t.puzzle, t.cube)
}

// String returns both puzzles as text.
func (t *Tracker) String() string {
	return "Tesseract:\n" + t.puzzle.String() + "\nCube:\n" + t.cube.String()
}
