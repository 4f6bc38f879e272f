package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrSessionNotFound is returned when a session ID has no row.
var ErrSessionNotFound = errors.New("session not found")

// Session represents a play session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	Notes        *string
	Solved       bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(notes, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, notes, scramble_text)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeLayout), nullable(notes), nullable(scramble))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// SetScramble records the scramble applied at the start of a session.
func (r *SessionRepository) SetScramble(sessionID, scramble string) error {
	_, err := r.db.Exec(`UPDATE sessions SET scramble_text = ? WHERE session_id = ?`,
		nullable(scramble), sessionID)
	if err != nil {
		return fmt.Errorf("failed to set scramble: %w", err)
	}
	return nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	s, err := r.Get(sessionID)
	if err != nil {
		return err
	}

	endedAt := time.Now().UTC()
	durationMs := endedAt.Sub(s.StartedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(timeLayout), durationMs, solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, duration_ms, scramble_text, notes, solved`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.ScrambleText, &s.Notes, &s.Solved); err != nil {
		return Session{}, err
	}

	s.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeLayout, endedAtStr.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Get retrieves a session by ID. A unique ID prefix is accepted too.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ? OR session_id LIKE ? || '%'
		ORDER BY session_id = ? DESC
		LIMIT 2
	`, sessionID, sessionID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	defer rows.Close()

	var found []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	switch {
	case len(found) == 0:
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	case found[0].SessionID == sessionID || len(found) == 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("session prefix %q is ambiguous", sessionID)
	}
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Delete deletes a session and its moves and events.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
