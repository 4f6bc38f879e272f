package tesseract

// CellColor identifies one of the 8 cubic cells of the tesseract.
// Each axis contributes a +cell and a -cell.
type CellColor byte

const (
	XPos CellColor = 0 // +X cell
	XNeg CellColor = 1
	YPos CellColor = 2
	YNeg CellColor = 3
	ZPos CellColor = 4
	ZNeg CellColor = 5
	WPos CellColor = 6
	WNeg CellColor = 7
)

// NumCellColors is the size of the tesseract palette.
const NumCellColors = 8

func (c CellColor) String() string {
	switch c {
	case XPos:
		return "+X"
	case XNeg:
		return "-X"
	case YPos:
		return "+Y"
	case YNeg:
		return "-Y"
	case ZPos:
		return "+Z"
	case ZNeg:
		return "-Z"
	case WPos:
		return "+W"
	case WNeg:
		return "-W"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the 8 cell colors.
func (c CellColor) Valid() bool {
	return c < NumCellColors
}

// ParseCellColor is the inverse of CellColor.String.
func ParseCellColor(s string) (CellColor, bool) {
	for c := CellColor(0); c < NumCellColors; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// cellColorFor returns the color a vertex shows on axis when its
// coordinate along that axis is coord.
func cellColorFor(axis, coord int) CellColor {
	if coord == 1 {
		return CellColor(axis * 2)
	}
	return CellColor(axis*2 + 1)
}

// FaceColor represents a sticker color on the inner Rubik's cube.
type FaceColor byte

const (
	White  FaceColor = 0 // Up face when solved
	Yellow FaceColor = 1 // Down face when solved
	Red    FaceColor = 2 // Right face when solved
	Orange FaceColor = 3 // Left face when solved
	Green  FaceColor = 4 // Front face when solved
	Blue   FaceColor = 5 // Back face when solved
)

// NumFaceColors is the size of the cube palette.
const NumFaceColors = 6

func (c FaceColor) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the 6 face colors.
func (c FaceColor) Valid() bool {
	return c < NumFaceColors
}

// ParseFaceColor is the inverse of FaceColor.String.
func ParseFaceColor(s string) (FaceColor, bool) {
	for c := FaceColor(0); c < NumFaceColors; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
