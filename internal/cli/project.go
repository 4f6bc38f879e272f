package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/math4d"
)

var (
	projectState     string
	projectWDistance float64
	projectWAngle    float64
	projectXYAngle   float64
	projectPreview   string
	projectProgress  float64
	projectPlotOnly  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the hypercube frame into 3D",
	Long: `Rotate the hypercube frame by the view angles and project it from 4D to
3D with a perspective divide on w. Cube face turns in the puzzle history
rotate the matching half of the frame.

With --preview the frame is shown partway through a move, --progress
(0 to 1) giving how far.`,
	Example: `  tesseract project --w-angle 30
  tesseract project --state puzzle.yaml --preview XY0 --progress 0.5`,
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().StringVar(&projectState, "state", "", "Snapshot file to load")
	projectCmd.Flags().Float64Var(&projectWDistance, "w-distance", 0, "Camera distance along w (default from config)")
	projectCmd.Flags().Float64Var(&projectWAngle, "w-angle", 0, "ZW view rotation in degrees (default from config)")
	projectCmd.Flags().Float64Var(&projectXYAngle, "xy-angle", 0, "XY view rotation in degrees (default from config)")
	projectCmd.Flags().StringVar(&projectPreview, "preview", "", "Move to show in progress (XY0, R', ...)")
	projectCmd.Flags().Float64Var(&projectProgress, "progress", 0.5, "Fraction of the preview move completed")
	projectCmd.Flags().BoolVar(&projectPlotOnly, "plot-only", false, "Only draw the plot")
}

func runProject(cmd *cobra.Command, args []string) error {
	wDistance, wAngle, xyAngle := cfg.View.WDistance, cfg.View.WAngle, cfg.View.XYAngle
	if cmd.Flags().Changed("w-distance") {
		wDistance = projectWDistance
	}
	if cmd.Flags().Changed("w-angle") {
		wAngle = projectWAngle
	}
	if cmd.Flags().Changed("xy-angle") {
		xyAngle = projectXYAngle
	}
	if wDistance <= 0 {
		return fmt.Errorf("w-distance must be positive, got %g", wDistance)
	}
	if projectProgress < 0 || projectProgress > 1 {
		return fmt.Errorf("progress must be between 0 and 1, got %g", projectProgress)
	}

	t, err := loadTracker(projectState, 0)
	if err != nil {
		return err
	}

	frame := frameFor(t)
	positions, err := previewPositions(frame, projectPreview, projectProgress)
	if err != nil {
		return err
	}
	points := math4d.ProjectAll(positions, math4d.ViewRotation(xyAngle, wAngle), wDistance)

	out := cmd.OutOrStdout()
	if projectPlotOnly {
		fmt.Fprint(out, renderPlot(points))
		return nil
	}
	fmt.Fprintf(out, "View: xy %.1f°  zw %.1f°  w-distance %.2f\n", xyAngle, wAngle, wDistance)
	if projectPreview != "" {
		fmt.Fprintf(out, "Preview: %s at %.0f%%\n", projectPreview, projectProgress*100)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, renderProjection(points))
	return nil
}

// previewPositions returns the frame positions with the named move turned
// by progress of a quarter turn. An empty move returns the frame as is.
func previewPositions(f *math4d.Frame, move string, progress float64) ([tesseract.NumVertices]math4d.Vec4, error) {
	if move == "" {
		return f.Positions(), nil
	}

	deg := 90 * progress
	if tesseract.IsSliceMoveCode(move) {
		m, err := tesseract.ParseSliceMove(move)
		if err != nil {
			return [tesseract.NumVertices]math4d.Vec4{}, err
		}
		if !m.Clockwise {
			deg = -deg
		}
		return f.SliceRotated(m.Plane, m.Layer, deg), nil
	}

	m, err := tesseract.ParseMove(move)
	if err != nil {
		return [tesseract.NumVertices]math4d.Vec4{}, err
	}
	if m.Turn == tesseract.CCW {
		deg = -deg
	}
	return f.FaceRotated(m.Face, deg), nil
}
