// Package analysis computes statistics over recorded play sessions.
package analysis

import (
	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

// PauseThresholdMs is the gap after which a pause is counted.
const PauseThresholdMs = 1500

// SessionSummary contains statistics for a single session. Scramble moves
// are counted separately and excluded from everything else.
type SessionSummary struct {
	SessionID          string           `json:"session_id"`
	StartedAt          string           `json:"started_at"`
	EndedAt            string           `json:"ended_at,omitempty"`
	DurationMs         int64            `json:"duration_ms"`
	Solved             bool             `json:"solved"`
	ScrambleMoves      int              `json:"scramble_moves"`
	TotalMoves         int              `json:"total_moves"`
	TesseractMoves     int              `json:"tesseract_moves"`
	CubeMoves          int              `json:"cube_moves"`
	Undos              int              `json:"undos"`
	NetMoves           int              `json:"net_moves"`
	OptimizedMoves     int              `json:"optimized_moves"`
	Efficiency         float64          `json:"efficiency"`
	Cancellations      int              `json:"cancellations"`
	TPSOverall         float64          `json:"tps_overall"`
	LongestPauseMs     int64            `json:"longest_pause_ms"`
	PauseCountOver1500 int              `json:"pause_count_over_1500ms"`
	AvgMoveDurationMs  float64          `json:"avg_move_duration_ms"`
	Profile            *MovementProfile `json:"profile"`
	Notes              string           `json:"notes,omitempty"`
}

// PauseInfo represents a pause during play.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize builds the summary of a stored session.
func Summarize(session storage.Session, records []storage.MoveRecord) *SessionSummary {
	s := &SessionSummary{
		SessionID: session.SessionID,
		StartedAt: session.StartedAt.Format("2006-01-02 15:04:05"),
		Solved:    session.Solved,
	}
	if session.EndedAt != nil {
		s.EndedAt = session.EndedAt.Format("2006-01-02 15:04:05")
	}
	if session.Notes != nil {
		s.Notes = *session.Notes
	}

	var played []TimedMove
	var net []string
	for _, r := range records {
		if r.Scramble {
			s.ScrambleMoves++
			continue
		}
		if r.Undo {
			s.Undos++
			if len(net) > 0 {
				net = net[:len(net)-1]
			}
			continue
		}
		s.TotalMoves++
		if r.Kind == tesseract.KindTesseract {
			s.TesseractMoves++
		} else {
			s.CubeMoves++
		}
		played = append(played, TimedMove{Notation: r.Notation, TsMs: r.TsMs})
		net = append(net, r.Notation)
	}

	notations := make([]string, len(played))
	for i, m := range played {
		notations[i] = m.Notation
	}

	s.NetMoves = len(net)
	s.OptimizedMoves = len(Simplify(net))
	if s.NetMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.NetMoves)
	}
	s.Cancellations = Cancellations(notations)

	if session.DurationMs != nil {
		s.DurationMs = *session.DurationMs
	} else if len(played) > 1 {
		s.DurationMs = played[len(played)-1].TsMs - played[0].TsMs
	}
	s.TPSOverall = CalculateTPS(len(played), s.DurationMs)
	s.LongestPauseMs = FindLongestPause(played)
	s.PauseCountOver1500 = CountPausesOver(played, PauseThresholdMs)
	s.AvgMoveDurationMs = CalculateAvgMoveDuration(played)
	s.Profile = AnalyzeMovementProfile(notations)
	return s
}

// AnalyzePauses finds all gaps of at least thresholdMs.
func AnalyzePauses(moves []TimedMove, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo
	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           moves[i-1].TsMs,
			})
		}
	}
	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []TimedMove) float64 {
	if len(moves) < 2 {
		return 0
	}
	totalGap := moves[len(moves)-1].TsMs - moves[0].TsMs
	return float64(totalGap) / float64(len(moves)-1)
}

// FindLongestPause finds the longest gap between consecutive moves.
func FindLongestPause(moves []TimedMove) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		longest = max(longest, moves[i].TsMs-moves[i-1].TsMs)
	}
	return longest
}

// CountPausesOver counts gaps strictly longer than thresholdMs.
func CountPausesOver(moves []TimedMove, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].TsMs-moves[i-1].TsMs > thresholdMs {
			count++
		}
	}
	return count
}

// MovementProfile counts which planes, layers and faces are turned.
type MovementProfile struct {
	PlaneCounts   map[string]int           `json:"plane_counts"`
	LayerCounts   [tesseract.NumLayers]int `json:"layer_counts"`
	FaceCounts    map[string]int           `json:"face_counts"`
	MostUsedPlane string                   `json:"most_used_plane,omitempty"`
	MostUsedFace  string                   `json:"most_used_face,omitempty"`
	Clockwise     int                      `json:"clockwise"`
	Counter       int                      `json:"counterclockwise"`
}

// AnalyzeMovementProfile tallies a sequence of notations. Ties for most
// used go to the earlier plane or face in canonical order.
func AnalyzeMovementProfile(notations []string) *MovementProfile {
	p := &MovementProfile{
		PlaneCounts: make(map[string]int),
		FaceCounts:  make(map[string]int),
	}

	for _, n := range notations {
		if sm, err := tesseract.ParseSliceMove(n); err == nil {
			p.PlaneCounts[sm.Plane.Code()]++
			p.LayerCounts[sm.Layer]++
			p.tallyTurn(sm.Clockwise)
			continue
		}
		if m, err := tesseract.ParseMove(n); err == nil {
			p.FaceCounts[m.Face.Letter()]++
			p.tallyTurn(m.Turn == tesseract.CW)
		}
	}

	best := 0
	for _, plane := range tesseract.Planes {
		if c := p.PlaneCounts[plane.Code()]; c > best {
			best, p.MostUsedPlane = c, plane.Code()
		}
	}
	best = 0
	for _, face := range tesseract.Faces {
		if c := p.FaceCounts[face.Letter()]; c > best {
			best, p.MostUsedFace = c, face.Letter()
		}
	}
	return p
}

func (p *MovementProfile) tallyTurn(clockwise bool) {
	if clockwise {
		p.Clockwise++
	} else {
		p.Counter++
	}
}
