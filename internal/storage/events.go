package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// Session event types.
const (
	EventScramble = "scramble"
	EventReset    = "reset"
	EventSolved   = "solved"
)

// Event is a notable session occurrence other than a move.
type Event struct {
	EventID     int64
	SessionID   string
	TsMs        int64
	EventType   string
	PayloadJSON string
}

// EventRepository provides CRUD operations for events.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create records an event with a JSON-encoded payload and returns its ID.
func (r *EventRepository) Create(sessionID string, ts time.Time, eventType string, payload any) (int64, error) {
	data := []byte("{}")
	if payload != nil {
		var err error
		if data, err = json.Marshal(payload); err != nil {
			return 0, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
		}
	}

	result, err := r.db.Exec(`
		INSERT INTO events (session_id, ts_ms, event_type, payload_json)
		VALUES (?, ?, ?, ?)
	`, sessionID, ts.UnixMilli(), eventType, string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get event ID: %w", err)
	}
	return id, nil
}

// GetBySession retrieves all events for a session.
func (r *EventRepository) GetBySession(sessionID string) ([]Event, error) {
	rows, err := r.db.Query(`
		SELECT event_id, session_id, ts_ms, event_type, payload_json
		FROM events
		WHERE session_id = ?
		ORDER BY ts_ms, event_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.EventID, &e.SessionID, &e.TsMs, &e.EventType, &e.PayloadJSON); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal([]byte(e.PayloadJSON), v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.EventType, err)
	}
	return nil
}
