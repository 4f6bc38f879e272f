package tesseract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzleIsSolved(t *testing.T) {
	p := NewPuzzle()
	assert.True(t, p.IsSolved())

	v, err := p.Vertex(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Vertex{XNeg, YNeg, ZNeg, WNeg}, v)

	v, err = p.Vertex(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Vertex{XPos, YPos, ZPos, WPos}, v)

	v, err = p.Vertex(1, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Vertex{XPos, YNeg, ZPos, WNeg}, v)
}

func TestSliceIndices(t *testing.T) {
	tests := []struct {
		plane Plane
		want  [NumLayers][4]int
	}{
		{PlaneXY, [NumLayers][4]int{{0, 8, 12, 4}, {1, 9, 13, 5}, {2, 10, 14, 6}, {3, 11, 15, 7}}},
		{PlaneXZ, [NumLayers][4]int{{0, 8, 10, 2}, {1, 9, 11, 3}, {4, 12, 14, 6}, {5, 13, 15, 7}}},
		{PlaneXW, [NumLayers][4]int{{0, 8, 9, 1}, {2, 10, 11, 3}, {4, 12, 13, 5}, {6, 14, 15, 7}}},
		{PlaneYZ, [NumLayers][4]int{{0, 4, 6, 2}, {1, 5, 7, 3}, {8, 12, 14, 10}, {9, 13, 15, 11}}},
		{PlaneYW, [NumLayers][4]int{{0, 4, 5, 1}, {2, 6, 7, 3}, {8, 12, 13, 9}, {10, 14, 15, 11}}},
		{PlaneZW, [NumLayers][4]int{{0, 2, 3, 1}, {4, 6, 7, 5}, {8, 10, 11, 9}, {12, 14, 15, 13}}},
	}
	for _, tt := range tests {
		t.Run(tt.plane.Code(), func(t *testing.T) {
			for layer := 0; layer < NumLayers; layer++ {
				got, err := SliceIndices(tt.plane, layer)
				require.NoError(t, err)
				if diff := cmp.Diff(tt.want[layer], got); diff != "" {
					t.Errorf("layer %d mismatch (-want +got):\n%s", layer, diff)
				}
			}
		})
	}
}

func TestSliceLayersPartitionVertices(t *testing.T) {
	for _, plane := range Planes {
		var seen [NumVertices]int
		for layer := 0; layer < NumLayers; layer++ {
			idx, err := SliceIndices(plane, layer)
			require.NoError(t, err)
			for _, i := range idx {
				require.True(t, i >= 0 && i < NumVertices, "%s layer %d index %d", plane, layer, i)
				seen[i]++
			}
		}
		for i, n := range seen {
			assert.Equal(t, 1, n, "%s: vertex %d covered %d times", plane, i, n)
		}
	}
}

func TestSliceIndicesRejectsBadInput(t *testing.T) {
	_, err := SliceIndices(Plane(6), 0)
	assert.ErrorIs(t, err, ErrInvalidPlane)

	_, err = SliceIndices(PlaneXY, 4)
	assert.ErrorIs(t, err, ErrInvalidLayer)

	_, err = SliceIndices(PlaneXY, -1)
	assert.ErrorIs(t, err, ErrInvalidLayer)
}

func TestIsVertexInSlice(t *testing.T) {
	assert.True(t, IsVertexInSlice(12, PlaneXY, 0))
	assert.False(t, IsVertexInSlice(1, PlaneXY, 0))
	assert.True(t, IsVertexInSlice(15, PlaneYW, 3))
	assert.False(t, IsVertexInSlice(0, PlaneXY, 9))
	assert.False(t, IsVertexInSlice(0, Plane(-2), 0))
}

func TestRotateSliceChangesOnlySliceVertices(t *testing.T) {
	for _, plane := range Planes {
		for layer := 0; layer < NumLayers; layer++ {
			p := NewPuzzle()
			before := p.Vertices()
			require.NoError(t, p.RotateSlice(plane, layer, true))
			after := p.Vertices()

			for i := 0; i < NumVertices; i++ {
				changed := before[i] != after[i]
				assert.Equal(t, IsVertexInSlice(i, plane, layer), changed,
					"%s%d vertex %d changed=%v", plane, layer, i, changed)
			}
		}
	}
}

func TestXY0FromSolved(t *testing.T) {
	p := NewPuzzle()
	require.NoError(t, p.ApplyMove("XY0"))

	// Vertex 0 moves to 8 with its X and Y slots swapped.
	v, err := p.VertexAt(8)
	require.NoError(t, err)
	assert.Equal(t, Vertex{YNeg, XNeg, ZNeg, WNeg}, v)

	// Vertex 4 (0,1,0,0) moves to 0.
	v, err = p.VertexAt(0)
	require.NoError(t, err)
	assert.Equal(t, Vertex{YPos, XNeg, ZNeg, WNeg}, v)

	assert.False(t, p.IsSolved())
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, plane := range Planes {
		for layer := 0; layer < NumLayers; layer++ {
			for _, cw := range []bool{true, false} {
				p := NewPuzzle()
				for i := 0; i < 4; i++ {
					require.NoError(t, p.RotateSlice(plane, layer, cw))
					if i < 3 {
						assert.False(t, p.IsSolved(), "%s%d cw=%v solved after %d turns", plane, layer, cw, i+1)
					}
				}
				assert.True(t, p.IsSolved(), "%s%d cw=%v x4", plane, layer, cw)
			}
		}
	}
}

func TestClockwiseThenCounterclockwiseIsIdentity(t *testing.T) {
	start := NewPuzzle()
	start.Scramble(20, NewRand(7))

	for _, plane := range Planes {
		for layer := 0; layer < NumLayers; layer++ {
			p := start.Clone()
			require.NoError(t, p.RotateSlice(plane, layer, true))
			require.NoError(t, p.RotateSlice(plane, layer, false))
			assert.Equal(t, start.Vertices(), p.Vertices(), "%s%d", plane, layer)

			p = start.Clone()
			require.NoError(t, p.RotateSlice(plane, layer, false))
			require.NoError(t, p.RotateSlice(plane, layer, true))
			assert.Equal(t, start.Vertices(), p.Vertices(), "%s%d'", plane, layer)
		}
	}
}

func TestLayersOfOnePlaneCommute(t *testing.T) {
	for _, plane := range Planes {
		a := NewPuzzle()
		require.NoError(t, a.RotateSlice(plane, 0, true))
		require.NoError(t, a.RotateSlice(plane, 3, false))

		b := NewPuzzle()
		require.NoError(t, b.RotateSlice(plane, 3, false))
		require.NoError(t, b.RotateSlice(plane, 0, true))

		assert.Equal(t, a.Vertices(), b.Vertices(), plane.Code())
	}
}

func TestColorCountsPreserved(t *testing.T) {
	p := NewPuzzle()
	p.Scramble(200, NewRand(13))

	var counts [NumCellColors]int
	for _, v := range p.Vertices() {
		for _, c := range v {
			require.True(t, c.Valid())
			counts[c]++
		}
	}
	for c, n := range counts {
		assert.Equal(t, 8, n, "color %v", CellColor(c))
	}
}

func TestApplyMoveMatchesRotateSlice(t *testing.T) {
	tests := []struct {
		code  string
		plane Plane
		layer int
		cw    bool
	}{
		{"XY0", PlaneXY, 0, true},
		{"XZ1'", PlaneXZ, 1, false},
		{"XW2", PlaneXW, 2, true},
		{"YZ3`", PlaneYZ, 3, false},
		{"YW1", PlaneYW, 1, true},
		{"ZW3'", PlaneZW, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			a := NewPuzzle()
			require.NoError(t, a.ApplyMove(tt.code))

			b := NewPuzzle()
			require.NoError(t, b.RotateSlice(tt.plane, tt.layer, tt.cw))

			assert.Equal(t, b.Vertices(), a.Vertices())
		})
	}
}

func TestApplyMoveInvalidLeavesPuzzleUnchanged(t *testing.T) {
	for _, code := range []string{"Q9", "XY4", "XY", "AB0", "XY0''", "xy0", "XY0x", "", " XY0", "XY0 ", "XY0' ", "\nZW3"} {
		p := NewPuzzle()
		require.NoError(t, p.ApplyMove("ZW1"))
		before := p.Vertices()

		err := p.ApplyMove(code)
		assert.ErrorIs(t, err, ErrInvalidMove, code)
		assert.Equal(t, before, p.Vertices(), code)
	}
}

func TestRotateSliceInvalidArguments(t *testing.T) {
	p := NewPuzzle()
	assert.ErrorIs(t, p.RotateSlice(Plane(7), 0, true), ErrInvalidPlane)
	assert.ErrorIs(t, p.RotateSlice(PlaneZW, 5, true), ErrInvalidLayer)
	assert.True(t, p.IsSolved())
}

func TestPuzzleScramble(t *testing.T) {
	p := NewPuzzle()
	assert.Empty(t, p.Scramble(0, NewRand(1)))
	assert.Empty(t, p.Scramble(-3, NewRand(1)))
	assert.True(t, p.IsSolved())

	moves := p.Scramble(DefaultPuzzleScrambleLength, NewRand(21))
	require.Len(t, moves, DefaultPuzzleScrambleLength)

	for i := len(moves) - 1; i >= 0; i-- {
		require.NoError(t, p.Apply(moves[i].Inverse()))
	}
	assert.True(t, p.IsSolved())
}

func TestPuzzleScrambleDeterministic(t *testing.T) {
	a, b := NewPuzzle(), NewPuzzle()
	ma := a.Scramble(30, NewRand(5))
	mb := b.Scramble(30, NewRand(5))

	if diff := cmp.Diff(ma, mb); diff != "" {
		t.Errorf("scrambles differ (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Vertices(), b.Vertices())
}

func TestVertexAccessorBounds(t *testing.T) {
	p := NewPuzzle()

	_, err := p.Vertex(2, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = p.Vertex(0, 0, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = p.VertexAt(16)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	for i := 0; i < NumVertices; i++ {
		ix, iy, iz, iw := VertexCoords(i)
		assert.Equal(t, i, VertexIndex(ix, iy, iz, iw))
	}
}

func TestPuzzleCloneIsIndependent(t *testing.T) {
	p := NewPuzzle()
	c := p.Clone()
	require.NoError(t, c.ApplyMove("XW0"))
	assert.True(t, p.IsSolved())
	assert.False(t, c.IsSolved())

	c.Reset()
	assert.True(t, c.IsSolved())
}
