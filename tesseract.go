// Package tesseract provides the state model and move algebra of a 4D
// tesseract puzzle (a 2x2x2x2 generalization of the Rubik's cube) and of
// the 3x3x3 Rubik's cube nested inside it.
//
// # Features
//
//   - 16-vertex tesseract with 4 color slots per vertex
//   - Slice rotations in the six 4D planes (XY, XZ, XW, YZ, YW, ZW)
//   - 3x3x3 cube with the 12 quarter-turn moves
//   - Move notation parsing and formatting for both puzzles
//   - Seedable scrambles
//   - A Tracker that owns both puzzles, keeps history and supports undo
//
// # Quick Start
//
//	p := tesseract.NewPuzzle()
//	_ = p.ApplyMove("XY0")
//	_ = p.RotateSlice(tesseract.PlaneZW, 3, false)
//	fmt.Println("Solved:", p.IsSolved())
//
//	c := tesseract.NewCube()
//	c.Apply(tesseract.SexyMove...)
//	fmt.Println(c)
//
// # Move Notation
//
// Tesseract moves are a plane code, a layer digit 0-3 and an optional '
// (or `) for counterclockwise: XY0, ZW3', YW1`.
//
// Cube moves are a face letter with an optional ': R, R', U, F'.
//
// # Scrambling
//
// Scrambles take an explicit random source so runs can be reproduced:
//
//	rng := tesseract.NewRand(42)
//	p.Scramble(tesseract.DefaultPuzzleScrambleLength, rng)
//
// # Tracker
//
//	t := tesseract.NewTracker(tesseract.WithSeed(7))
//	t.SetSolvedCallback(func(k tesseract.Kind) { fmt.Println(k, "solved") })
//	_ = t.ApplySequence("XY0 R U")
//	_, _ = t.Undo()
package tesseract
