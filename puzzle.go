package tesseract

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// NumLayers is the number of parallel slices along each rotation plane.
const NumLayers = 4

// DefaultPuzzleScrambleLength is the scramble length used when none is given.
const DefaultPuzzleScrambleLength = 30

// Puzzle is the 2x2x2x2 tesseract puzzle: 16 vertices, each carrying 4
// color slots. Vertices are indexed by ix*8+iy*4+iz*2+iw.
//
// The zero value is not solved; use NewPuzzle.
type Puzzle struct {
	vertices [NumVertices]Vertex
}

// NewPuzzle creates a puzzle in the solved configuration.
func NewPuzzle() *Puzzle {
	p := &Puzzle{}
	p.Reset()
	return p
}

// Reset restores the solved configuration.
func (p *Puzzle) Reset() {
	for i := range p.vertices {
		p.vertices[i] = solvedVertex(i)
	}
}

// Clone creates a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	clone := *p
	return &clone
}

// SliceIndices returns the 4 vertex indices of the (plane, layer) cross
// section, in cycle order: in-plane coordinates (0,0), (1,0), (1,1), (0,1).
//
// The two free axes take a = layer/2 and b = layer%2.
func SliceIndices(plane Plane, layer int) ([4]int, error) {
	if !plane.Valid() {
		return [4]int{}, fmt.Errorf("%w: %d", ErrInvalidPlane, int(plane))
	}
	if layer < 0 || layer >= NumLayers {
		return [4]int{}, fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	return sliceIndices(plane, layer), nil
}

// sliceIndices expects a valid plane and layer.
func sliceIndices(plane Plane, layer int) [4]int {
	p, q := plane.Axes()
	fa, fb := plane.FreeAxes()
	base := (layer/2)*axisWeight[fa] + (layer%2)*axisWeight[fb]

	return [4]int{
		base,
		base + axisWeight[p],
		base + axisWeight[p] + axisWeight[q],
		base + axisWeight[q],
	}
}

// IsVertexInSlice reports whether vertex idx belongs to the (plane, layer)
// cross section. Invalid arguments report false.
func IsVertexInSlice(idx int, plane Plane, layer int) bool {
	slice, err := SliceIndices(plane, layer)
	if err != nil {
		return false
	}
	for _, i := range slice {
		if i == idx {
			return true
		}
	}
	return false
}

// RotateSlice turns one slice 90 degrees in the given plane.
//
// Each of the 4 vertices in the slice swaps the two color slots of the
// plane's axes, then the vertices cycle 0->1->2->3->0 (clockwise) or the
// reverse. The puzzle is unchanged when an error is returned.
func (p *Puzzle) RotateSlice(plane Plane, layer int, clockwise bool) error {
	if _, err := SliceIndices(plane, layer); err != nil {
		return err
	}
	p.rotate(plane, layer, clockwise)
	return nil
}

// rotate expects a valid plane and layer.
func (p *Puzzle) rotate(plane Plane, layer int, clockwise bool) {
	idx := sliceIndices(plane, layer)
	s0, s1 := plane.Axes()

	var temp [4]Vertex
	for i := range temp {
		temp[i] = p.vertices[idx[i]]
		temp[i][s0], temp[i][s1] = temp[i][s1], temp[i][s0]
	}

	if clockwise {
		for i := range temp {
			p.vertices[idx[(i+1)%4]] = temp[i]
		}
	} else {
		for i := range temp {
			p.vertices[idx[i]] = temp[(i+1)%4]
		}
	}
}

// ApplyMove parses a move code such as "XY0" or "ZW3'" and applies it.
// The puzzle is unchanged when the code is invalid.
func (p *Puzzle) ApplyMove(code string) error {
	m, err := ParseSliceMove(code)
	if err != nil {
		return err
	}
	return p.Apply(m)
}

// Apply applies a sequence of slice moves, stopping at the first invalid one.
func (p *Puzzle) Apply(moves ...SliceMove) error {
	for _, m := range moves {
		if err := p.RotateSlice(m.Plane, m.Layer, m.Clockwise); err != nil {
			return err
		}
	}
	return nil
}

// Scramble applies n uniformly random slice moves drawn from rng and
// returns them. n <= 0 is a no-op.
func (p *Puzzle) Scramble(n int, rng *rand.Rand) []SliceMove {
	if n <= 0 {
		return nil
	}
	moves := make([]SliceMove, n)
	for i := range moves {
		moves[i] = SliceMove{
			Plane:     Planes[rng.IntN(NumPlanes)],
			Layer:     rng.IntN(NumLayers),
			Clockwise: rng.IntN(2) == 0,
		}
		p.rotate(moves[i].Plane, moves[i].Layer, moves[i].Clockwise)
	}
	return moves
}

// IsSolved reports whether every slot matches a freshly constructed puzzle.
func (p *Puzzle) IsSolved() bool {
	solved := NewPuzzle()
	return p.vertices == solved.vertices
}

// Vertex returns the vertex at grid position (ix, iy, iz, iw); each
// coordinate must be 0 or 1.
func (p *Puzzle) Vertex(ix, iy, iz, iw int) (Vertex, error) {
	for _, c := range [4]int{ix, iy, iz, iw} {
		if c != 0 && c != 1 {
			return Vertex{}, fmt.Errorf("%w: (%d,%d,%d,%d)", ErrInvalidCoordinate, ix, iy, iz, iw)
		}
	}
	return p.vertices[VertexIndex(ix, iy, iz, iw)], nil
}

// VertexAt returns the vertex with index idx (0..15).
func (p *Puzzle) VertexAt(idx int) (Vertex, error) {
	if idx < 0 || idx >= NumVertices {
		return Vertex{}, fmt.Errorf("%w: index %d", ErrInvalidCoordinate, idx)
	}
	return p.vertices[idx], nil
}

// Vertices returns a copy of all 16 vertices in index order.
func (p *Puzzle) Vertices() [NumVertices]Vertex {
	return p.vertices
}

// String returns one line per vertex: index, grid coordinates and slots.
func (p *Puzzle) String() string {
	var b strings.Builder
	for i, v := range p.vertices {
		ix, iy, iz, iw := VertexCoords(i)
		fmt.Fprintf(&b, "%2d (%d,%d,%d,%d) %s\n", i, ix, iy, iz, iw, v)
	}
	return b.String()
}
