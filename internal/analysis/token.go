package analysis

import (
	"github.com/SeamusWaldron/tesseract"
)

// Tokens number every quarter turn of both puzzles so sequences can be
// hashed. Slice moves take 0-47 as plane*8 + layer*2 + ccw; cube moves
// follow at 48 in tesseract.AllMoves order. Clockwise and counterclockwise
// differ only in the low bit, so tok^1 is the inverse.
const (
	numSliceTokens = tesseract.NumPlanes * tesseract.NumLayers * 2
	NumTokens      = numSliceTokens + len(tesseract.AllMoves)
)

// Token returns the token for a move in either notation.
func Token(notation string) (uint8, bool) {
	if tesseract.IsSliceMoveCode(notation) {
		m, err := tesseract.ParseSliceMove(notation)
		if err != nil {
			return 0, false
		}
		tok := int(m.Plane)*tesseract.NumLayers*2 + m.Layer*2
		if !m.Clockwise {
			tok++
		}
		return uint8(tok), true
	}

	m, err := tesseract.ParseMove(notation)
	if err != nil {
		return 0, false
	}
	for i, a := range tesseract.AllMoves {
		if a == m {
			return uint8(numSliceTokens + i), true
		}
	}
	return 0, false
}

// TokenNotation is the inverse of Token.
func TokenNotation(tok uint8) string {
	t := int(tok)
	switch {
	case t < numSliceTokens:
		m := tesseract.SliceMove{
			Plane:     tesseract.Planes[t/(tesseract.NumLayers*2)],
			Layer:     t % (tesseract.NumLayers * 2) / 2,
			Clockwise: t%2 == 0,
		}
		return m.Notation()
	case t < NumTokens:
		return tesseract.AllMoves[t-numSliceTokens].Notation()
	default:
		return "?"
	}
}

// inverse returns the token that undoes tok.
func inverse(tok uint8) uint8 {
	return tok ^ 1
}
