package tesseract

import (
	"fmt"
	"strings"
)

// Turn represents the direction of a quarter face turn.
type Turn int

const (
	CW  Turn = 1  // Clockwise (90 degrees)
	CCW Turn = -1 // Counter-clockwise (90 degrees)
)

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Turn == CCW {
		return m.Face.Letter() + "'"
	}
	return m.Face.Letter()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	if m.Turn == CCW {
		inv.Turn = CW
	} else {
		inv.Turn = CCW
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses one of the 12 canonical cube tokens.
// Returns ErrInvalidMove for anything else, including lowercase letters
// and half turns.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	var face Face
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	turn := CW // Default is clockwise
	if len(s) == 2 {
		if s[1] != '\'' {
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
		turn = CCW
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
