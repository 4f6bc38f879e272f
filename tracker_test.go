package tesseract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrackerDispatchesTokens(t *testing.T) {
	tr := NewTracker(WithSeed(1))
	require.NoError(t, tr.ApplySequence("XY0 R ZW3' U'"))

	assert.False(t, tr.Puzzle().IsSolved())
	assert.False(t, tr.Cube().IsSolved())

	want := []Step{
		{Kind: KindTesseract, Notation: "XY0"},
		{Kind: KindCube, Notation: "R"},
		{Kind: KindTesseract, Notation: "ZW3'"},
		{Kind: KindCube, Notation: "U'"},
	}
	assert.Equal(t, want, tr.History())
}

func TestTrackerSequenceIsAtomic(t *testing.T) {
	tr := NewTracker()
	err := tr.ApplySequence("XY0 R Q9")
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.True(t, tr.IsSolved())
	assert.Empty(t, tr.History())
}

func TestTrackerBacktickNormalized(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Apply("YW1`"))
	assert.Equal(t, "YW1'", tr.History()[0].Notation)
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	_, err := tr.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)

	require.NoError(t, tr.ApplySequence("XZ1 F B' YZ2'"))
	for _, want := range []string{"YZ2'", "B'", "F", "XZ1"} {
		got, err := tr.Undo()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, tr.IsSolved())
	assert.Empty(t, tr.History())
}

func TestTrackerUndoAfterScramble(t *testing.T) {
	tr := NewTracker(WithSeed(9))
	slices, moves := tr.Scramble(10, 8)
	require.Len(t, slices, 10)
	require.Len(t, moves, 8)
	require.Len(t, tr.History(), 18)
	for _, s := range tr.History() {
		assert.True(t, s.Scramble)
	}

	for range 18 {
		_, err := tr.Undo()
		require.NoError(t, err)
	}
	assert.True(t, tr.IsSolved())
}

func TestTrackerScrambleDeterministic(t *testing.T) {
	a := NewTracker(WithSeed(77))
	b := NewTracker(WithSeed(77))
	sa, ma := a.Scramble(DefaultPuzzleScrambleLength, DefaultCubeScrambleLength)
	sb, mb := b.Scramble(DefaultPuzzleScrambleLength, DefaultCubeScrambleLength)
	assert.Equal(t, sa, sb)
	assert.Equal(t, ma, mb)
	assert.Equal(t, a.String(), b.String())
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker()
	var solved []Kind
	tr.SetSolvedCallback(func(k Kind) { solved = append(solved, k) })

	require.NoError(t, tr.ApplySequence("R R R R"))
	assert.Equal(t, []Kind{KindCube}, solved)

	require.NoError(t, tr.ApplySequence("XW2 XW2'"))
	assert.Equal(t, []Kind{KindCube, KindTesseract}, solved)

	// Undoing back to solved also counts.
	require.NoError(t, tr.Apply("F"))
	_, err := tr.Undo()
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindCube, KindTesseract, KindCube}, solved)
}

func TestTrackerScrambleDoesNotFireCallback(t *testing.T) {
	tr := NewTracker(WithSeed(3))
	fired := false
	tr.SetSolvedCallback(func(Kind) { fired = true })
	tr.Scramble(4, 4)
	for range 8 {
		_, err := tr.Undo()
		require.NoError(t, err)
	}
	assert.False(t, fired)
}

func TestTrackerApplyScrambleMove(t *testing.T) {
	tr := NewTracker()
	fired := false
	tr.SetSolvedCallback(func(Kind) { fired = true })

	require.NoError(t, tr.ApplyScrambleMove("XW2`"))
	require.NoError(t, tr.ApplyScrambleMove("D"))
	require.NoError(t, tr.Apply("D'"))

	assert.Equal(t, []Step{
		{Kind: KindTesseract, Notation: "XW2'", Scramble: true},
		{Kind: KindCube, Notation: "D", Scramble: true},
		{Kind: KindCube, Notation: "D'"},
	}, tr.History())
	assert.True(t, tr.Cube().IsSolved())
	assert.True(t, fired)

	assert.ErrorIs(t, tr.ApplyScrambleMove("XY9"), ErrInvalidMove)
	assert.Len(t, tr.History(), 3)
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		token string
		want  Step
	}{
		{"XY0", Step{Kind: KindTesseract, Notation: "XY0"}},
		{"ZW3`", Step{Kind: KindTesseract, Notation: "ZW3'"}},
		{"B'", Step{Kind: KindCube, Notation: "B'"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseStep(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", " R", "XY0 ", "Q9"} {
		_, err := ParseStep(bad)
		assert.ErrorIs(t, err, ErrInvalidMove, bad)
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	require.NoError(t, tr.Apply("R"))
	assert.Empty(t, tr.History())
	_, err := tr.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestTrackerTypedMoves(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.RotateSlice(SliceMove{Plane: PlaneYW, Layer: 3, Clockwise: true}))
	require.NoError(t, tr.RotateFace(L))
	assert.ErrorIs(t, tr.RotateSlice(SliceMove{Plane: PlaneYW, Layer: 4}), ErrInvalidLayer)
	assert.ErrorIs(t, tr.RotateFace(Move{Face: Face(9), Turn: CW}), ErrInvalidFace)
	assert.Len(t, tr.History(), 2)

	tr.Reset()
	assert.True(t, tr.IsSolved())
	assert.Empty(t, tr.History())
}

func TestTrackerLogsMoves(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := NewTracker(WithLogger(zap.New(core)))

	require.NoError(t, tr.Apply("XY0"))
	entries := logs.FilterMessage("move applied").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "XY0", entries[0].ContextMap()["move"])
	assert.Equal(t, "tesseract", entries[0].ContextMap()["puzzle"])
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindTesseract, KindCube} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("dodecahedron")
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	tr := NewTracker()
	pr := tr.GetProgress()
	assert.Equal(t, Progress{SlotsHome: TotalSlots, VerticesHome: NumVertices, StickersHome: TotalStickers, FacesSolved: NumFaces}, pr)
	assert.True(t, pr.IsComplete())
	assert.InDelta(t, 1.0, pr.PuzzleFraction(), 1e-9)

	require.NoError(t, tr.ApplySequence("XY0 R"))
	pr = tr.GetProgress()
	assert.False(t, pr.IsComplete())
	assert.Equal(t, NumVertices-4, pr.VerticesHome)
	// R leaves L and R solid; the other four faces each lose a column.
	assert.Equal(t, 2, pr.FacesSolved)
	assert.Equal(t, TotalStickers-12, pr.StickersHome)

	assert.Equal(t, Progress{}, GetProgress(nil, nil))
}
