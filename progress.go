package tesseract

// Progress summarizes how close both puzzles are to solved. It is a
// display aid only; IsSolved remains the authority.
type Progress struct {
	// Tesseract
	SlotsHome    int // color slots matching the solved configuration (of 64)
	VerticesHome int // vertices with all 4 slots home (of 16)

	// Cube
	StickersHome int // stickers showing their face's home color (of 54)
	FacesSolved  int // solid faces (of 6)
}

// Totals for Progress fields.
const (
	TotalSlots    = NumVertices * 4
	TotalStickers = NumFaces * 9
)

// PuzzleFraction returns the share of tesseract slots in place, 0..1.
func (p Progress) PuzzleFraction() float64 {
	return float64(p.SlotsHome) / float64(TotalSlots)
}

// CubeFraction returns the share of cube stickers in place, 0..1.
func (p Progress) CubeFraction() float64 {
	return float64(p.StickersHome) / float64(TotalStickers)
}

// IsComplete returns true if both puzzles are solved.
func (p Progress) IsComplete() bool {
	return p.SlotsHome == TotalSlots && p.StickersHome == TotalStickers
}

// progress counts home slots and vertices of a puzzle.
func (p *Puzzle) progress() (slots, vertices int) {
	for i, v := range p.vertices {
		home := solvedVertex(i)
		all := true
		for s := range v {
			if v[s] == home[s] {
				slots++
			} else {
				all = false
			}
		}
		if all {
			vertices++
		}
	}
	return slots, vertices
}

// progress counts home stickers and solid faces of a cube.
func (c *Cube) progress() (stickers, faces int) {
	for _, f := range Faces {
		home := f.HomeColor()
		solid := true
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if c.faces[f][r][col] == home {
					stickers++
				} else {
					solid = false
				}
			}
		}
		if solid {
			faces++
		}
	}
	return stickers, faces
}

// GetProgress returns the progress of a puzzle and cube pair. Either may be nil.
func GetProgress(p *Puzzle, c *Cube) Progress {
	var pr Progress
	if p != nil {
		pr.SlotsHome, pr.VerticesHome = p.progress()
	}
	if c != nil {
		pr.StickersHome, pr.FacesSolved = c.progress()
	}
	return pr
}
