package tesseract

import "strings"

// NumVertices is the number of hypercube vertices in the puzzle.
const NumVertices = 16

// Vertex holds the 4 color slots of one hypercube vertex. Slot s records
// which cell color currently faces along axis s at that corner.
type Vertex [4]CellColor

func (v Vertex) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// VertexIndex maps grid coordinates (each 0 or 1) to a vertex index.
func VertexIndex(ix, iy, iz, iw int) int {
	return ix*8 + iy*4 + iz*2 + iw
}

// VertexCoords is the inverse of VertexIndex.
func VertexCoords(idx int) (ix, iy, iz, iw int) {
	return idx / 8, (idx / 4) % 2, (idx / 2) % 2, idx % 2
}

// axisWeight is the contribution of a unit coordinate on each axis to
// the vertex index.
var axisWeight = [4]int{8, 4, 2, 1}

// solvedVertex returns the color slots of vertex idx in the solved puzzle.
func solvedVertex(idx int) Vertex {
	ix, iy, iz, iw := VertexCoords(idx)
	return Vertex{
		cellColorFor(AxisX, ix),
		cellColorFor(AxisY, iy),
		cellColorFor(AxisZ, iz),
		cellColorFor(AxisW, iw),
	}
}
