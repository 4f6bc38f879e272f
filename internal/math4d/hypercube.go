package math4d

import "github.com/SeamusWaldron/tesseract"

// NumEdges is the number of hypercube edges.
const NumEdges = 32

// VertexPosition returns the rest position of vertex idx: each coordinate
// is -1 for a 0 grid coordinate and +1 for a 1.
func VertexPosition(idx int) Vec4 {
	ix, iy, iz, iw := tesseract.VertexCoords(idx)
	return Vec4{unit(ix), unit(iy), unit(iz), unit(iw)}
}

func unit(c int) float64 {
	if c == 0 {
		return -1
	}
	return 1
}

// Edges returns the vertex index pairs joined by a hypercube edge, i.e.
// pairs whose indices differ in exactly one bit. Lower index first.
func Edges() [NumEdges][2]int {
	var edges [NumEdges][2]int
	n := 0
	for a := 0; a < tesseract.NumVertices; a++ {
		for _, w := range [4]int{1, 2, 4, 8} {
			if b := a | w; b != a {
				edges[n] = [2]int{a, b}
				n++
			}
		}
	}
	return edges
}

// FaceRotation returns the 90 degree rotation of the 3D subspace that
// matches a quarter turn of the given cube face. R/L turn in YZ, U/D in
// XZ and F/B in XY; the opposite face turns the other way.
func FaceRotation(face tesseract.Face, clockwise bool) Mat4 {
	return faceRotation(face, quarter(clockwise))
}

func faceRotation(face tesseract.Face, deg float64) Mat4 {
	plane, sign, ok := facePlane(face)
	if !ok {
		return Identity()
	}
	return Rotate(plane, sign*deg)
}

func quarter(clockwise bool) float64 {
	if clockwise {
		return 90
	}
	return -90
}

func facePlane(face tesseract.Face) (plane tesseract.Plane, sign float64, ok bool) {
	switch face {
	case tesseract.FaceR:
		return tesseract.PlaneYZ, 1, true
	case tesseract.FaceL:
		return tesseract.PlaneYZ, -1, true
	case tesseract.FaceU:
		return tesseract.PlaneXZ, 1, true
	case tesseract.FaceD:
		return tesseract.PlaneXZ, -1, true
	case tesseract.FaceF:
		return tesseract.PlaneXY, 1, true
	case tesseract.FaceB:
		return tesseract.PlaneXY, -1, true
	}
	return 0, 0, false
}

// InFaceLayer reports whether the rest position of vertex idx lies in the
// half of the frame a face turn carries: x>0 for R, x<0 for L, y for U/D,
// z for F/B.
func InFaceLayer(idx int, face tesseract.Face) bool {
	ix, iy, iz, _ := tesseract.VertexCoords(idx)
	switch face {
	case tesseract.FaceR:
		return ix == 1
	case tesseract.FaceL:
		return ix == 0
	case tesseract.FaceU:
		return iy == 1
	case tesseract.FaceD:
		return iy == 0
	case tesseract.FaceF:
		return iz == 1
	case tesseract.FaceB:
		return iz == 0
	}
	return false
}
