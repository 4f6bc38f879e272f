// Package recorder persists play sessions: every move, undo, scramble and
// reset applied through a Session lands in the database.
package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrNotRecording is returned by operations that need an active session.
var ErrNotRecording = errors.New("no session in progress")

// Session records the moves applied to a tracker.
type Session struct {
	tracker *tesseract.Tracker
	logger  *zap.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
	eventRepo   *storage.EventRepository

	now func() time.Time
}

// NewSession creates a session manager for tracker backed by db.
func NewSession(db *storage.DB, tracker *tesseract.Tracker, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		tracker:     tracker,
		logger:      logger,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
		eventRepo:   storage.NewEventRepository(db),
		now:         time.Now,
	}
	tracker.SetSolvedCallback(s.onSolved)
	return s
}

// Tracker returns the tracker being recorded.
func (s *Session) Tracker() *tesseract.Tracker {
	return s.tracker
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the time since the session started in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return s.now().Sub(s.startTime).Milliseconds()
}

// MoveCount returns the number of recorded move rows.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start begins a new session.
func (s *Session) Start(notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	id, err := s.sessionRepo.Create(notes, "")
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = id
	s.startTime = s.now()
	s.moveIndex = 0
	s.state = StateRecording

	s.logger.Info("session started", zap.String("session", id))
	return id, nil
}

// Apply applies a token to the tracker and records it.
func (s *Session) Apply(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	step, err := tesseract.ParseStep(token)
	if err != nil {
		return err
	}
	if err := s.tracker.Apply(token); err != nil {
		return err
	}
	return s.recordLocked(step.Kind, step.Notation, false)
}

// Undo reverts the tracker's last move and records the undo.
func (s *Session) Undo() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return "", ErrNotRecording
	}
	history := s.tracker.History()
	notation, err := s.tracker.Undo()
	if err != nil {
		return "", err
	}
	kind := history[len(history)-1].Kind
	return notation, s.recordLocked(kind, notation, true)
}

// Scramble scrambles both puzzles and records the scramble moves.
func (s *Session) Scramble(puzzleMoves, cubeMoves int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	slices, moves := s.tracker.Scramble(puzzleMoves, cubeMoves)
	steps := scrambleSteps(slices, moves)

	now := s.now()
	if err := s.moveRepo.CreateBatch(s.sessionID, steps, s.moveIndex, now); err != nil {
		return fmt.Errorf("failed to store scramble: %w", err)
	}
	s.moveIndex += len(steps)

	text := scrambleText(slices, moves)
	if err := s.sessionRepo.SetScramble(s.sessionID, text); err != nil {
		return err
	}
	_, err := s.eventRepo.Create(s.sessionID, now, storage.EventScramble, map[string]string{
		"tesseract": tesseract.FormatSliceMoves(slices),
		"cube":      tesseract.FormatMoves(moves),
	})
	return err
}

// scrambleSteps lists the scramble in the order Tracker.Scramble applies
// it. The tracker's own history may be disabled.
func scrambleSteps(slices []tesseract.SliceMove, moves []tesseract.Move) []tesseract.Step {
	steps := make([]tesseract.Step, 0, len(slices)+len(moves))
	for _, m := range slices {
		steps = append(steps, tesseract.Step{Kind: tesseract.KindTesseract, Notation: m.Notation(), Scramble: true})
	}
	for _, m := range moves {
		steps = append(steps, tesseract.Step{Kind: tesseract.KindCube, Notation: m.Notation(), Scramble: true})
	}
	return steps
}

func scrambleText(slices []tesseract.SliceMove, moves []tesseract.Move) string {
	a, b := tesseract.FormatSliceMoves(slices), tesseract.FormatMoves(moves)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// Reset restores both puzzles and records a reset event. The move log is
// kept; replaying a session stops at its last reset.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	s.tracker.Reset()
	_, err := s.eventRepo.Create(s.sessionID, s.now(), storage.EventReset, map[string]int{"move_index": s.moveIndex})
	return err
}

// End finishes the session, recording whether both puzzles are solved.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	solved := s.tracker.IsSolved()
	if err := s.sessionRepo.End(s.sessionID, solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.state = StateEnded

	s.logger.Info("session ended",
		zap.String("session", s.sessionID),
		zap.Int("moves", s.moveIndex),
		zap.Bool("solved", solved))
	return nil
}

// Resume continues an unfinished session, rebuilding the tracker from its
// recorded moves.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess.EndedAt != nil {
		return fmt.Errorf("session already ended")
	}

	tracker, next, err := Rebuild(s.moveRepo, s.eventRepo, sess.SessionID)
	if err != nil {
		return err
	}

	// Carry the rebuilt state over without replacing the caller's tracker.
	s.state = StateIdle
	s.tracker.Reset()
	for _, step := range tracker.History() {
		apply := s.tracker.Apply
		if step.Scramble {
			apply = s.tracker.ApplyScrambleMove
		}
		if err := apply(step.Notation); err != nil {
			return err
		}
	}

	s.sessionID = sess.SessionID
	s.startTime = sess.StartedAt
	s.moveIndex = next
	s.state = StateRecording
	return nil
}

func (s *Session) recordLocked(kind tesseract.Kind, notation string, undo bool) error {
	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, s.now(), kind, notation, undo); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++
	return nil
}

// onSolved runs inside Apply or Undo, so the lock is already held.
func (s *Session) onSolved(kind tesseract.Kind) {
	if s.state != StateRecording {
		return
	}
	if _, err := s.eventRepo.Create(s.sessionID, s.now(), storage.EventSolved, map[string]string{"puzzle": kind.String()}); err != nil {
		s.logger.Warn("failed to record solved event", zap.Error(err))
	}
	s.logger.Info("puzzle solved", zap.String("puzzle", kind.String()), zap.String("session", s.sessionID))
}

// Rebuild replays a stored session into a fresh tracker, honoring resets.
// It also returns the next free move index.
func Rebuild(moves *storage.MoveRepository, events *storage.EventRepository, sessionID string) (*tesseract.Tracker, int, error) {
	records, err := moves.GetBySession(sessionID)
	if err != nil {
		return nil, 0, err
	}
	evs, err := events.GetBySession(sessionID)
	if err != nil {
		return nil, 0, err
	}

	// Moves before the last reset no longer affect the state.
	from := 0
	for _, e := range evs {
		if e.EventType != storage.EventReset {
			continue
		}
		var payload struct {
			MoveIndex int `json:"move_index"`
		}
		if err := e.Decode(&payload); err != nil {
			return nil, 0, err
		}
		from = payload.MoveIndex
	}

	var kept []storage.MoveRecord
	for _, r := range records {
		if r.MoveIndex >= from {
			kept = append(kept, r)
		}
	}

	tracker := tesseract.NewTracker()
	if err := storage.Replay(tracker, kept); err != nil {
		return nil, 0, err
	}

	next := 0
	if n := len(records); n > 0 {
		next = records[n-1].MoveIndex + 1
	}
	return tracker, next, nil
}
