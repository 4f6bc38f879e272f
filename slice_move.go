package tesseract

import (
	"fmt"
	"strings"
)

// SliceMove is a single 90 degree tesseract slice rotation.
type SliceMove struct {
	Plane     Plane
	Layer     int  // 0..3
	Clockwise bool
}

// Notation returns the move code, e.g. XY0 or ZW3'.
func (m SliceMove) Notation() string {
	s := fmt.Sprintf("%s%d", m.Plane.Code(), m.Layer)
	if !m.Clockwise {
		s += "'"
	}
	return s
}

// String returns the notation string (alias for Notation).
func (m SliceMove) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m SliceMove) Inverse() SliceMove {
	m.Clockwise = !m.Clockwise
	return m
}

// ParseSliceMove parses a tesseract move code: a plane code (XY, XZ, XW,
// YZ, YW, ZW), a layer digit 0-3 and an optional ' or ` for counterclockwise.
func ParseSliceMove(s string) (SliceMove, error) {
	if len(s) < 3 || len(s) > 4 {
		return SliceMove{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	plane, err := ParsePlane(s[:2])
	if err != nil {
		return SliceMove{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	layer := int(s[2]) - '0'
	if layer < 0 || layer >= NumLayers {
		return SliceMove{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	clockwise := true
	if len(s) == 4 {
		switch s[3] {
		case '\'', '`':
			clockwise = false
		default:
			return SliceMove{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
	}

	return SliceMove{Plane: plane, Layer: layer, Clockwise: clockwise}, nil
}

// ParseSliceMoves parses a space-separated sequence such as "XY0 ZW3'".
// Unlike the display helpers, it fails on the first invalid token.
func ParseSliceMoves(s string) ([]SliceMove, error) {
	parts := strings.Fields(s)
	moves := make([]SliceMove, 0, len(parts))
	for _, part := range parts {
		m, err := ParseSliceMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSliceMoves formats moves as a space-separated notation string.
func FormatSliceMoves(moves []SliceMove) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// IsSliceMoveCode reports whether token looks like a tesseract move (it
// starts with a plane code) rather than a cube move.
func IsSliceMoveCode(token string) bool {
	if len(token) < 2 {
		return false
	}
	_, err := ParsePlane(token[:2])
	return err == nil
}
