package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

// openDB opens and migrates the configured database.
func openDB() (*storage.DB, error) {
	path := cfg.Storage.Path
	if path == "" {
		var err error
		if path, err = storage.DefaultDBPath(); err != nil {
			return nil, err
		}
	}

	db, err := storage.OpenMigrated(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// trackerOptions applies the configured seed and logger.
func trackerOptions(seed uint64) []tesseract.Option {
	if seed == 0 {
		seed = cfg.Scramble.Seed
	}
	return []tesseract.Option{
		tesseract.WithSeed(seed),
		tesseract.WithLogger(logger),
	}
}

// loadTracker restores the tracker saved at statePath. An empty path or a
// missing file yields a solved tracker.
func loadTracker(statePath string, seed uint64) (*tesseract.Tracker, error) {
	opts := trackerOptions(seed)
	if statePath == "" {
		return tesseract.NewTracker(opts...), nil
	}
	t, err := snapshot.Load(statePath, opts...)
	if errors.Is(err, fs.ErrNotExist) {
		return tesseract.NewTracker(opts...), nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// resolveSession returns the session named by id, or the latest one.
func resolveSession(db *storage.DB, id string, last bool) (*storage.Session, error) {
	sessions := storage.NewSessionRepository(db)
	if last || id == "" {
		s, err := sessions.GetLast()
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("no sessions recorded yet")
		}
		return s, err
	}
	return sessions.Get(id)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// wrapMoves groups notations into lines of at most width characters.
func wrapMoves(notations []string, width int) []string {
	var lines []string
	var line string
	for _, n := range notations {
		switch {
		case line == "":
			line = n
		case len(line)+len(n)+1 > width:
			lines = append(lines, line)
			line = n
		default:
			line += " " + n
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
