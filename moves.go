package tesseract

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(tesseract.R, tesseract.U, tesseract.RPrime, tesseract.UPrime)
var (
	R      = Move{Face: FaceR, Turn: CW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW} // Right counter-clockwise

	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}

	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}

	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}

	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}

	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
)

// AllMoves is the 12-token cube move set, in notation order.
var AllMoves = [12]Move{R, RPrime, L, LPrime, U, UPrime, D, DPrime, F, FPrime, B, BPrime}

// Sexy move: R U R' U'. Six repetitions return the cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}
