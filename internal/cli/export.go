package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/printer"
	"github.com/SeamusWaldron/tesseract/internal/recorder"
	"github.com/SeamusWaldron/tesseract/internal/snapshot"
	"github.com/SeamusWaldron/tesseract/internal/storage"
)

var (
	exportSessionID string
	exportFormat    string
	exportOutput    string
	exportLast      bool

	snapshotSessionID string
	snapshotState     string
	snapshotFormat    string
	snapshotOutput    string
	snapshotLast      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export recorded moves or puzzle snapshots in various formats.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export moves from a session",
	Long: `Export the move log of a session as text, JSON or YAML.

Examples:
  tesseract export moves --last
  tesseract export moves --id <session_id> --format json
  tesseract export moves --id <session_id> --format txt -o moves.txt`,
	Args: cobra.NoArgs,
	RunE: runExportMoves,
}

var exportSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export a puzzle snapshot",
	Long: `Write a snapshot of both puzzles as JSON or YAML. The state comes from a
session replay (--id or --last) or from an existing snapshot file (--state),
which makes this command a JSON/YAML converter too.

Examples:
  tesseract export snapshot --last --format yaml
  tesseract export snapshot --state puzzle.json --format yaml -o puzzle.yaml`,
	Args: cobra.NoArgs,
	RunE: runExportSnapshot,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	exportCmd.AddCommand(exportSnapshotCmd)
	exportSnapshotCmd.Flags().StringVar(&snapshotSessionID, "id", "", "Session ID to replay")
	exportSnapshotCmd.Flags().BoolVar(&snapshotLast, "last", false, "Replay the last session")
	exportSnapshotCmd.Flags().StringVar(&snapshotState, "state", "", "Snapshot file to convert")
	exportSnapshotCmd.Flags().StringVar(&snapshotFormat, "format", "", "Export format (json, yaml; default from -o or json)")
	exportSnapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "", "Output file (default: stdout)")
}

type moveExport struct {
	MoveIndex int    `json:"move_index" yaml:"move_index"`
	TsMs      int64  `json:"ts_ms" yaml:"ts_ms"`
	Kind      string `json:"kind" yaml:"kind"`
	Notation  string `json:"notation" yaml:"notation"`
	Undo      bool   `json:"undo,omitempty" yaml:"undo,omitempty"`
	Scramble  bool   `json:"scramble,omitempty" yaml:"scramble,omitempty"`
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	if exportSessionID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(db, exportSessionID, exportLast)
	if err != nil {
		return err
	}

	moves, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}
	if len(moves) == 0 {
		return fmt.Errorf("no moves found for session %s", session.SessionID)
	}

	var output string
	format := strings.ToLower(exportFormat)
	switch format {
	case "txt":
		var notations []string
		for _, m := range moves {
			if m.Undo {
				notations = append(notations, inverseNotation(m.Kind, m.Notation))
				continue
			}
			notations = append(notations, m.Notation)
		}
		output = strings.Join(notations, " ")

	case "json", "yaml", "yml":
		rows := make([]moveExport, len(moves))
		for i, m := range moves {
			rows[i] = moveExport{
				MoveIndex: m.MoveIndex,
				TsMs:      m.TsMs,
				Kind:      m.Kind.String(),
				Notation:  m.Notation,
				Undo:      m.Undo,
				Scramble:  m.Scramble,
			}
		}
		var data []byte
		if format == "json" {
			data, err = json.MarshalIndent(rows, "", "  ")
		} else {
			data, err = yaml.Marshal(rows)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", format, err)
		}
		output = strings.TrimRight(string(data), "\n")

	default:
		return fmt.Errorf("unknown format: %s (use txt, json or yaml)", exportFormat)
	}

	if err := writeOutput(cmd, exportOutput, output); err != nil {
		return err
	}
	if exportOutput != "" {
		printer.Success("Exported %d moves to %s\n", len(moves), exportOutput)
	}
	return nil
}

// inverseNotation returns the move that reverts notation, so a text
// export replays to the same state without undo markers.
func inverseNotation(kind tesseract.Kind, notation string) string {
	if kind == tesseract.KindTesseract {
		if m, err := tesseract.ParseSliceMove(notation); err == nil {
			return m.Inverse().Notation()
		}
		return notation
	}
	if m, err := tesseract.ParseMove(notation); err == nil {
		return m.Inverse().Notation()
	}
	return notation
}

func runExportSnapshot(cmd *cobra.Command, args []string) error {
	var t *tesseract.Tracker
	switch {
	case snapshotState != "":
		var err error
		if t, err = snapshot.Load(snapshotState, trackerOptions(0)...); err != nil {
			return err
		}

	case snapshotSessionID != "" || snapshotLast:
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		session, err := resolveSession(db, snapshotSessionID, snapshotLast)
		if err != nil {
			return err
		}
		t, _, err = recorder.Rebuild(storage.NewMoveRepository(db), storage.NewEventRepository(db), session.SessionID)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("specify --state, --id or --last")
	}

	format := snapshot.FormatJSON
	switch {
	case snapshotFormat != "":
		f, err := snapshot.ParseFormat(snapshotFormat)
		if err != nil {
			return err
		}
		format = f
	case snapshotOutput != "":
		format = snapshot.FormatForPath(snapshotOutput)
	}

	data, err := snapshot.Marshal(snapshot.Capture(t), format)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, snapshotOutput, strings.TrimRight(string(data), "\n")); err != nil {
		return err
	}
	if snapshotOutput != "" {
		printer.Success("Exported snapshot to %s\n", snapshotOutput)
	}
	return nil
}

// writeOutput prints output to stdout or writes it to path.
func writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
