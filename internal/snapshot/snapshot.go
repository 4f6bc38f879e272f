// Package snapshot saves and restores tracker state as JSON or YAML files.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/tesseract"
)

// Version is the current snapshot format version.
const Version = 1

// ErrMismatch is returned when replaying a snapshot's history does not
// reproduce its recorded state.
var ErrMismatch = errors.New("snapshot state does not match its history")

// Step is one history entry.
type Step struct {
	Notation string `json:"notation" yaml:"notation"`
	Scramble bool   `json:"scramble,omitempty" yaml:"scramble,omitempty"`
}

// Snapshot is the serializable form of a tracker.
type Snapshot struct {
	Version   int                              `json:"version" yaml:"version"`
	SavedAt   time.Time                        `json:"saved_at" yaml:"saved_at"`
	History   []Step                           `json:"history" yaml:"history"`
	Tesseract [tesseract.NumVertices][4]string `json:"tesseract" yaml:"tesseract"`
	Cube      [tesseract.NumFaces][3][3]string `json:"cube" yaml:"cube"`
	Solved    bool                             `json:"solved" yaml:"solved"`
}

// Capture records the tracker's history and both puzzle states.
func Capture(t *tesseract.Tracker) Snapshot {
	s := Snapshot{
		Version: Version,
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Solved:  t.IsSolved(),
		History: []Step{},
	}
	for _, h := range t.History() {
		s.History = append(s.History, Step{Notation: h.Notation, Scramble: h.Scramble})
	}
	for i, v := range t.Puzzle().Vertices() {
		for slot, c := range v {
			s.Tesseract[i][slot] = c.String()
		}
	}
	for f, grid := range t.Cube().Faces() {
		for r, row := range grid {
			for c, color := range row {
				s.Cube[f][r][c] = color.String()
			}
		}
	}
	return s
}

// Restore rebuilds a tracker by replaying the snapshot's history, then
// checks the result against the recorded state. Scramble entries keep
// their flag.
func Restore(s Snapshot, opts ...tesseract.Option) (*tesseract.Tracker, error) {
	if s.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}

	t := tesseract.NewTracker(opts...)
	for i, h := range s.History {
		apply := t.Apply
		if h.Scramble {
			apply = t.ApplyScrambleMove
		}
		if err := apply(h.Notation); err != nil {
			return nil, fmt.Errorf("replay history entry %d: %w", i, err)
		}
	}

	got := Capture(t)
	if got.Tesseract != s.Tesseract || got.Cube != s.Cube {
		return nil, ErrMismatch
	}
	return t, nil
}

// Format is a file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

// FormatForPath picks the format from the file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes s in the given format.
func Marshal(s Snapshot, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Unmarshal decodes data in the given format.
func Unmarshal(data []byte, f Format) (Snapshot, error) {
	var s Snapshot
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	return s, err
}

// Save writes the tracker's snapshot to path, choosing the format by
// extension.
func Save(path string, t *tesseract.Tracker) error {
	data, err := Marshal(Capture(t), FormatForPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot file and restores its tracker.
func Load(path string, opts ...tesseract.Option) (*tesseract.Tracker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Unmarshal(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return Restore(s, opts...)
}
