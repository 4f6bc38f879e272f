package tesseract

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultCubeScrambleLength is the cube scramble length used when none is given.
const DefaultCubeScrambleLength = 25

// Face identifies a face of the inner Rubik's cube.
type Face int

const (
	FaceR Face = 0 // Right (Red)
	FaceL Face = 1 // Left (Orange)
	FaceU Face = 2 // Up (White)
	FaceD Face = 3 // Down (Yellow)
	FaceF Face = 4 // Front (Green)
	FaceB Face = 5 // Back (Blue)
)

// NumFaces is the number of cube faces.
const NumFaces = 6

// Faces lists every face in ordinal order.
var Faces = [NumFaces]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= 0 && f < NumFaces
}

// Letter returns the notation letter of the face.
func (f Face) Letter() string {
	switch f {
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

func (f Face) String() string {
	return f.Letter()
}

// HomeColor returns the color of the face when the cube is solved.
func (f Face) HomeColor() FaceColor {
	switch f {
	case FaceR:
		return Red
	case FaceL:
		return Orange
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	default:
		return White
	}
}

// FaceGrid is one face of stickers, indexed [row][col].
type FaceGrid [3][3]FaceColor

// Cube is the 3x3x3 Rubik's cube nested inside the tesseract. Each face is
// a 3x3 grid:
//
//	[0][0] [0][1] [0][2]
//	[1][0] [1][1] [1][2]
//	[2][0] [2][1] [2][2]
//
// The center ([1][1]) defines the face color and never moves.
type Cube struct {
	faces [NumFaces]FaceGrid
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores 6 solid-colored faces.
func (c *Cube) Reset() {
	for _, f := range Faces {
		color := f.HomeColor()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c.faces[f][row][col] = color
			}
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every sticker shows its face's home color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		expected := f.HomeColor()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if c.faces[f][row][col] != expected {
					return false
				}
			}
		}
	}
	return true
}

// sticker addresses one facelet.
type sticker struct {
	face     Face
	row, col int
}

// strip is 3 stickers along the edge of a neighbouring face.
type strip [3]sticker

func column(f Face, col int, reversed bool) strip {
	var s strip
	for i := range s {
		row := i
		if reversed {
			row = 2 - i
		}
		s[i] = sticker{face: f, row: row, col: col}
	}
	return s
}

func row(f Face, r int, reversed bool) strip {
	var s strip
	for i := range s {
		col := i
		if reversed {
			col = 2 - i
		}
		s[i] = sticker{face: f, row: r, col: col}
	}
	return s
}

// adjacentStrips lists, per face, the 4 neighbouring strips in cycle
// order. A clockwise turn moves strip k+1 into strip k, and strip 0 into
// strip 3.
var adjacentStrips = [NumFaces][4]strip{
	// R: U <- F <- D <- B (B column read bottom up)
	FaceR: {column(FaceU, 2, false), column(FaceF, 2, false), column(FaceD, 2, false), column(FaceB, 0, true)},
	// L: U <- B <- D <- F
	FaceL: {column(FaceU, 0, false), column(FaceB, 2, true), column(FaceD, 0, false), column(FaceF, 0, false)},
	// U: F <- R <- B <- L top rows
	FaceU: {row(FaceF, 0, false), row(FaceR, 0, false), row(FaceB, 0, false), row(FaceL, 0, false)},
	// D: F <- L <- B <- R bottom rows
	FaceD: {row(FaceF, 2, false), row(FaceL, 2, false), row(FaceB, 2, false), row(FaceR, 2, false)},
	// F: U bottom <- L right <- D top <- R left
	FaceF: {row(FaceU, 2, false), column(FaceL, 2, true), row(FaceD, 0, true), column(FaceR, 0, false)},
	// B: U top <- R right <- D bottom <- L left
	FaceB: {row(FaceU, 0, false), column(FaceR, 2, false), row(FaceD, 2, true), column(FaceL, 0, true)},
}

func (c *Cube) get(s sticker) FaceColor {
	return c.faces[s.face][s.row][s.col]
}

func (c *Cube) set(s sticker, color FaceColor) {
	c.faces[s.face][s.row][s.col] = color
}

// rotateFaceCW rotates a face grid 90 degrees clockwise.
func (c *Cube) rotateFaceCW(f Face) {
	old := c.faces[f]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.faces[f][j][2-i] = old[i][j]
		}
	}
}

// rotateFaceCCW rotates a face grid 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(f Face) {
	old := c.faces[f]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.faces[f][2-j][i] = old[i][j]
		}
	}
}

// cycleStripsCW moves each strip's stickers one step along the cycle.
func (c *Cube) cycleStripsCW(f Face) {
	s := &adjacentStrips[f]
	var t [3]FaceColor
	for i := range t {
		t[i] = c.get(s[0][i])
	}
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			c.set(s[k][i], c.get(s[k+1][i]))
		}
	}
	for i := range t {
		c.set(s[3][i], t[i])
	}
}

// cycleStripsCCW is the exact inverse of cycleStripsCW.
func (c *Cube) cycleStripsCCW(f Face) {
	s := &adjacentStrips[f]
	var t [3]FaceColor
	for i := range t {
		t[i] = c.get(s[3][i])
	}
	for k := 3; k > 0; k-- {
		for i := 0; i < 3; i++ {
			c.set(s[k][i], c.get(s[k-1][i]))
		}
	}
	for i := range t {
		c.set(s[0][i], t[i])
	}
}

func (c *Cube) turnCW(f Face) {
	c.rotateFaceCW(f)
	c.cycleStripsCW(f)
}

func (c *Cube) turnCCW(f Face) {
	c.rotateFaceCCW(f)
	c.cycleStripsCCW(f)
}

func (c *Cube) turn(m Move) {
	if m.Turn == CW {
		c.turnCW(m.Face)
	} else {
		c.turnCCW(m.Face)
	}
}

// Rotate turns a face 90 degrees. The cube is unchanged on error.
func (c *Cube) Rotate(f Face, clockwise bool) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}
	if clockwise {
		c.turnCW(f)
	} else {
		c.turnCCW(f)
	}
	return nil
}

func (c *Cube) RotateR() { c.turnCW(FaceR) }
func (c *Cube) RotateL() { c.turnCW(FaceL) }
func (c *Cube) RotateU() { c.turnCW(FaceU) }
func (c *Cube) RotateD() { c.turnCW(FaceD) }
func (c *Cube) RotateF() { c.turnCW(FaceF) }
func (c *Cube) RotateB() { c.turnCW(FaceB) }

func (c *Cube) RotateRPrime() { c.turnCCW(FaceR) }
func (c *Cube) RotateLPrime() { c.turnCCW(FaceL) }
func (c *Cube) RotateUPrime() { c.turnCCW(FaceU) }
func (c *Cube) RotateDPrime() { c.turnCCW(FaceD) }
func (c *Cube) RotateFPrime() { c.turnCCW(FaceF) }
func (c *Cube) RotateBPrime() { c.turnCCW(FaceB) }

// ApplyMove applies one of the 12 move tokens (R, R', L, L', U, U', D, D',
// F, F', B, B'). The cube is unchanged when the token is not recognized.
func (c *Cube) ApplyMove(code string) error {
	m, err := ParseMove(code)
	if err != nil {
		return err
	}
	return c.Apply(m)
}

// Apply applies a sequence of moves, stopping at the first invalid one.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := c.Rotate(m.Face, m.Turn == CW); err != nil {
			return err
		}
	}
	return nil
}

// Scramble applies n random moves drawn uniformly from the 12 tokens and
// returns them. n <= 0 is a no-op.
func (c *Cube) Scramble(n int, rng *rand.Rand) []Move {
	if n <= 0 {
		return nil
	}
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = AllMoves[rng.IntN(len(AllMoves))]
		c.turn(moves[i])
	}
	return moves
}

// Color returns the sticker color at (face, row, col).
func (c *Cube) Color(f Face, row, col int) (FaceColor, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, int(f))
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, fmt.Errorf("%w: %s[%d][%d]", ErrOutOfRange, f, row, col)
	}
	return c.faces[f][row][col], nil
}

// Faces returns a copy of all 6 face grids, indexed by Face.
func (c *Cube) Faces() [NumFaces]FaceGrid {
	return c.faces
}

// String returns the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func (c *Cube) String() string {
	var b strings.Builder

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[FaceU][r][col].String() + " ")
		}
		b.WriteString("\n")
	}

	for r := 0; r < 3; r++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.faces[f][r][col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[FaceD][r][col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
