package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/tesseract"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Kind      tesseract.Kind
	Notation  string
	Undo      bool // the entry reverted an earlier move
	Scramble  bool
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create appends a move to a session and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, ts time.Time, kind tesseract.Kind, notation string, undo bool) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, kind, notation, is_undo)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, ts.UnixMilli(), kind.String(), notation, undo)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// CreateBatch appends steps in a single transaction starting at startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, steps []tesseract.Step, startIndex int, ts time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, s := range steps {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, kind, notation, is_undo, is_scramble)
				VALUES (?, ?, ?, ?, ?, 0, ?)
			`, sessionID, startIndex+i, ts.UnixMilli(), s.Kind.String(), s.Notation, s.Scramble)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, kind, notation, is_undo, is_scramble
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var kind string
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &kind, &m.Notation, &m.Undo, &m.Scramble); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if m.Kind, err = tesseract.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("move %d: %w", m.MoveID, err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Replay applies stored moves to t in order. Undo rows revert the latest
// history entry rather than applying their notation; scramble rows are
// replayed as scramble steps.
func Replay(t *tesseract.Tracker, records []MoveRecord) error {
	for _, m := range records {
		if m.Undo {
			if _, err := t.Undo(); err != nil {
				return fmt.Errorf("move %d: %w", m.MoveIndex, err)
			}
			continue
		}
		apply := t.Apply
		if m.Scramble {
			apply = t.ApplyScrambleMove
		}
		if err := apply(m.Notation); err != nil {
			return fmt.Errorf("move %d: %w", m.MoveIndex, err)
		}
	}
	return nil
}
