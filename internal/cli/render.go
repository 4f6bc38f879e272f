package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/tesseract"
	"github.com/SeamusWaldron/tesseract/internal/math4d"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

var faceColorStyles = [tesseract.NumFaceColors]lipgloss.Style{
	tesseract.White:  sticker("15", "0"),
	tesseract.Yellow: sticker("11", "0"),
	tesseract.Red:    sticker("9", "15"),
	tesseract.Orange: sticker("208", "0"),
	tesseract.Green:  sticker("10", "0"),
	tesseract.Blue:   sticker("12", "15"),
}

// Cell colors pair up by axis: +X/-X red/orange, +Y/-Y white/yellow,
// +Z/-Z green/blue, +W/-W magenta/cyan.
var cellColorStyles = [tesseract.NumCellColors]lipgloss.Style{
	tesseract.XPos: sticker("9", "15"),
	tesseract.XNeg: sticker("208", "0"),
	tesseract.YPos: sticker("15", "0"),
	tesseract.YNeg: sticker("11", "0"),
	tesseract.ZPos: sticker("10", "0"),
	tesseract.ZNeg: sticker("12", "15"),
	tesseract.WPos: sticker("13", "0"),
	tesseract.WNeg: sticker("14", "0"),
}

func sticker(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

func renderSticker(c tesseract.FaceColor) string {
	if !c.Valid() {
		return " ? "
	}
	return faceColorStyles[c].Render(" " + c.String() + " ")
}

func renderCell(c tesseract.CellColor) string {
	if !c.Valid() {
		return " ?? "
	}
	return cellColorStyles[c].Render(" " + c.String() + " ")
}

// renderCubeNet draws the cube unfolded around the front face:
//
//	    U
//	L F R B
//	    D
func renderCubeNet(c *tesseract.Cube) string {
	faces := c.Faces()
	grid := func(f tesseract.Face) []string {
		lines := make([]string, 3)
		for r := 0; r < 3; r++ {
			var b strings.Builder
			for col := 0; col < 3; col++ {
				b.WriteString(renderSticker(faces[f][r][col]))
			}
			lines[r] = b.String()
		}
		return lines
	}
	pad := strings.Repeat(" ", 9)

	var b strings.Builder
	for _, line := range grid(tesseract.FaceU) {
		b.WriteString(pad + line + "\n")
	}
	middle := [][]string{grid(tesseract.FaceL), grid(tesseract.FaceF), grid(tesseract.FaceR), grid(tesseract.FaceB)}
	for r := 0; r < 3; r++ {
		for _, g := range middle {
			b.WriteString(g[r])
		}
		b.WriteString("\n")
	}
	for _, line := range grid(tesseract.FaceD) {
		b.WriteString(pad + line + "\n")
	}
	return b.String()
}

// renderVertices lists the 16 tesseract vertices, four per row.
func renderVertices(p *tesseract.Puzzle) string {
	vertices := p.Vertices()
	var b strings.Builder
	for i, v := range vertices {
		ix, iy, iz, iw := tesseract.VertexCoords(i)
		b.WriteString(statusStyle.Render(fmt.Sprintf("%2d %d%d%d%d ", i, ix, iy, iz, iw)))
		for _, c := range v {
			b.WriteString(renderCell(c))
		}
		if i%4 == 3 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

func solvedLabel(solved bool) string {
	if solved {
		return solvedStyle.Render("solved")
	}
	return errorStyle.Render("scrambled")
}

// renderTracker shows both puzzles with their progress.
func renderTracker(t *tesseract.Tracker) string {
	pr := t.GetProgress()
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %d/%d slots, %d/%d vertices home\n",
		headerStyle.Render("Tesseract"), solvedLabel(t.Puzzle().IsSolved()),
		pr.SlotsHome, tesseract.TotalSlots, pr.VerticesHome, tesseract.NumVertices)
	b.WriteString(renderVertices(t.Puzzle()))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s  %s  %d/%d stickers, %d/%d faces\n",
		headerStyle.Render("Cube"), solvedLabel(t.Cube().IsSolved()),
		pr.StickersHome, tesseract.TotalStickers, pr.FacesSolved, tesseract.NumFaces)
	b.WriteString(renderCubeNet(t.Cube()))
	return b.String()
}

// frameFor returns the hypercube frame with every cube turn in the
// tracker's history committed.
func frameFor(t *tesseract.Tracker) *math4d.Frame {
	f := math4d.NewFrame()
	for _, s := range t.History() {
		if s.Kind != tesseract.KindCube {
			continue
		}
		m, err := tesseract.ParseMove(s.Notation)
		if err != nil {
			continue
		}
		f.Commit(m.Face, m.Turn == tesseract.CW)
	}
	return f
}

// renderProjection prints projected vertex coordinates followed by a plot.
func renderProjection(points [tesseract.NumVertices]math4d.Vec3) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Projected vertices") + "\n")
	for i, p := range points {
		fmt.Fprintf(&b, "%2d  % 7.3f % 7.3f % 7.3f\n", i, p.X, p.Y, p.Z)
	}
	b.WriteString("\n")
	b.WriteString(renderPlot(points))
	return b.String()
}

const plotSize = 21

// renderPlot draws the projected hypercube edges on an XY character grid.
func renderPlot(points [tesseract.NumVertices]math4d.Vec3) string {
	var canvas [plotSize][plotSize]byte
	for r := range canvas {
		for c := range canvas[r] {
			canvas[r][c] = ' '
		}
	}
	maxAbs := 1e-9
	for _, p := range points {
		maxAbs = max(maxAbs, abs(p.X), abs(p.Y))
	}
	plot := func(p math4d.Vec3) (int, int) {
		c := int((p.X/maxAbs + 1) / 2 * (plotSize - 1))
		r := int((1 - (p.Y/maxAbs+1)/2) * (plotSize - 1))
		return r, c
	}
	for _, e := range math4d.Edges() {
		r0, c0 := plot(points[e[0]])
		r1, c1 := plot(points[e[1]])
		steps := max(abs(float64(r1-r0)), abs(float64(c1-c0)), 1)
		for s := 0; s <= int(steps); s++ {
			f := float64(s) / steps
			r := r0 + int(f*float64(r1-r0))
			c := c0 + int(f*float64(c1-c0))
			if canvas[r][c] == ' ' {
				canvas[r][c] = '.'
			}
		}
	}
	for _, p := range points {
		r, c := plot(p)
		canvas[r][c] = 'o'
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(moveStyle.Render(strings.TrimRight(string(row[:]), " ")) + "\n")
	}
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
