package tesseract

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.RotateR()
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		c := NewCube()
		for i := 0; i < 4; i++ {
			if err := c.Rotate(face, true); err != nil {
				t.Fatal(err)
			}
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestPrimeUndoesMove_AllFaces(t *testing.T) {
	cw := map[Face]func(*Cube){
		FaceR: (*Cube).RotateR, FaceL: (*Cube).RotateL, FaceU: (*Cube).RotateU,
		FaceD: (*Cube).RotateD, FaceF: (*Cube).RotateF, FaceB: (*Cube).RotateB,
	}
	ccw := map[Face]func(*Cube){
		FaceR: (*Cube).RotateRPrime, FaceL: (*Cube).RotateLPrime, FaceU: (*Cube).RotateUPrime,
		FaceD: (*Cube).RotateDPrime, FaceF: (*Cube).RotateFPrime, FaceB: (*Cube).RotateBPrime,
	}
	for _, face := range Faces {
		c := NewCube()
		cw[face](c)
		ccw[face](c)
		if !c.IsSolved() {
			t.Errorf("%v then %v' should return to solved", face, face)
			t.Log(c.String())
		}

		c = NewCube()
		ccw[face](c)
		cw[face](c)
		if !c.IsSolved() {
			t.Errorf("%v' then %v should return to solved", face, face)
		}
	}
}

func TestPrimeEqualsThreeClockwise(t *testing.T) {
	scramble := NewCube()
	scramble.Scramble(40, NewRand(11))

	for _, face := range Faces {
		direct := scramble.Clone()
		if err := direct.Rotate(face, false); err != nil {
			t.Fatal(err)
		}

		triple := scramble.Clone()
		for i := 0; i < 3; i++ {
			_ = triple.Rotate(face, true)
		}

		if direct.Faces() != triple.Faces() {
			t.Errorf("%v' differs from %v x 3", face, face)
			t.Logf("direct:\n%s\ntriple:\n%s", direct, triple)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		for _, tok := range []string{"R", "U", "R'", "U'"} {
			if err := c.ApplyMove(tok); err != nil {
				t.Fatal(err)
			}
		}
		if i < 5 && c.IsSolved() {
			t.Fatalf("cube solved after only %d repetitions", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestCentersNeverMove(t *testing.T) {
	c := NewCube()
	c.Scramble(100, NewRand(3))
	for _, face := range Faces {
		center, err := c.Color(face, 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if center != face.HomeColor() {
			t.Errorf("center of %v moved: got %v, want %v", face, center, face.HomeColor())
		}
	}
}

func TestStickerCountsPreserved(t *testing.T) {
	c := NewCube()
	c.Scramble(60, NewRand(5))
	var counts [NumFaceColors]int
	for _, grid := range c.Faces() {
		for _, r := range grid {
			for _, color := range r {
				counts[color]++
			}
		}
	}
	for color, n := range counts {
		if n != 9 {
			t.Errorf("color %v appears %d times, want 9", FaceColor(color), n)
		}
	}
}

func TestApplyMoveMatchesDirectCalls(t *testing.T) {
	tests := []struct {
		token  string
		direct func(*Cube)
	}{
		{"R", (*Cube).RotateR},
		{"R'", (*Cube).RotateRPrime},
		{"L", (*Cube).RotateL},
		{"L'", (*Cube).RotateLPrime},
		{"U", (*Cube).RotateU},
		{"U'", (*Cube).RotateUPrime},
		{"D", (*Cube).RotateD},
		{"D'", (*Cube).RotateDPrime},
		{"F", (*Cube).RotateF},
		{"F'", (*Cube).RotateFPrime},
		{"B", (*Cube).RotateB},
		{"B'", (*Cube).RotateBPrime},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			viaToken := NewCube()
			viaToken.RotateU() // start from a non-trivial state
			if err := viaToken.ApplyMove(tt.token); err != nil {
				t.Fatalf("ApplyMove(%q): %v", tt.token, err)
			}

			viaCall := NewCube()
			viaCall.RotateU()
			tt.direct(viaCall)

			if viaToken.Faces() != viaCall.Faces() {
				t.Errorf("ApplyMove(%q) differs from direct call", tt.token)
			}
		})
	}
}

func TestApplyMoveRejectsUnknownTokens(t *testing.T) {
	for _, tok := range []string{"Z", "", "r", "R2", "R''", "X'", "RU", "XY0", " R", "R ", "R' ", "\tU"} {
		c := NewCube()
		c.RotateF()
		before := c.Faces()

		err := c.ApplyMove(tok)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ApplyMove(%q) error = %v, want ErrInvalidMove", tok, err)
		}
		if c.Faces() != before {
			t.Errorf("ApplyMove(%q) mutated the cube", tok)
		}
	}
}

func TestColorBounds(t *testing.T) {
	c := NewCube()

	got, err := c.Color(FaceU, 0, 2)
	if err != nil || got != White {
		t.Errorf("Color(U,0,2) = %v, %v; want W, nil", got, err)
	}

	if _, err := c.Color(FaceU, 3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("row 3 should be out of range, got %v", err)
	}
	if _, err := c.Color(FaceU, 0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("col -1 should be out of range, got %v", err)
	}
	if _, err := c.Color(Face(6), 0, 0); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("face 6 should be invalid, got %v", err)
	}
}

func TestRotateInvalidFace(t *testing.T) {
	c := NewCube()
	if err := c.Rotate(Face(-1), true); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("Rotate(-1) error = %v, want ErrInvalidFace", err)
	}
	if !c.IsSolved() {
		t.Error("invalid rotate should not mutate")
	}
}

func TestCubeScrambleZeroIsNoop(t *testing.T) {
	c := NewCube()
	if moves := c.Scramble(0, NewRand(1)); len(moves) != 0 {
		t.Errorf("Scramble(0) returned %d moves", len(moves))
	}
	if !c.IsSolved() {
		t.Error("Scramble(0) should leave the cube solved")
	}
}

func TestCubeScrambleAndReverse(t *testing.T) {
	c := NewCube()
	moves := c.Scramble(DefaultCubeScrambleLength, NewRand(99))
	if len(moves) != DefaultCubeScrambleLength {
		t.Fatalf("got %d moves, want %d", len(moves), DefaultCubeScrambleLength)
	}

	for i := len(moves) - 1; i >= 0; i-- {
		if err := c.Apply(moves[i].Inverse()); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestCubeScrambleDeterministic(t *testing.T) {
	a, b := NewCube(), NewCube()
	ma := a.Scramble(25, NewRand(42))
	mb := b.Scramble(25, NewRand(42))
	if FormatMoves(ma) != FormatMoves(mb) {
		t.Errorf("same seed gave different scrambles:\n%s\n%s", FormatMoves(ma), FormatMoves(mb))
	}
	if a.Faces() != b.Faces() {
		t.Error("same seed gave different states")
	}
}

func TestRMovesRightColumns(t *testing.T) {
	c := NewCube()
	c.RotateR()

	// Front's right column comes up to Up.
	for row := 0; row < 3; row++ {
		got, _ := c.Color(FaceU, row, 2)
		if got != Green {
			t.Errorf("U[%d][2] = %v, want G", row, got)
		}
	}
	// Up's right column goes to the back's left column.
	for row := 0; row < 3; row++ {
		got, _ := c.Color(FaceB, row, 0)
		if got != White {
			t.Errorf("B[%d][0] = %v, want W", row, got)
		}
	}
	// Right face itself stays red.
	if c.Faces()[FaceR] != NewCube().Faces()[FaceR] {
		t.Error("R face should remain solid red")
	}
}
