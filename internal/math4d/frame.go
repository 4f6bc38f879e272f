package math4d

import "github.com/SeamusWaldron/tesseract"

// Frame tracks the outer hypercube's vertex positions. Committed cube face
// turns rotate the matching half of the frame so the outer shell follows
// the inner cube.
type Frame struct {
	positions [tesseract.NumVertices]Vec4
}

// NewFrame returns a frame at its rest positions.
func NewFrame() *Frame {
	f := &Frame{}
	f.Reset()
	return f
}

// Reset restores the rest positions.
func (f *Frame) Reset() {
	for i := range f.positions {
		f.positions[i] = VertexPosition(i)
	}
}

// Positions returns a copy of the current 4D positions.
func (f *Frame) Positions() [tesseract.NumVertices]Vec4 {
	return f.positions
}

// Commit applies a completed quarter turn of face to the frame.
func (f *Frame) Commit(face tesseract.Face, clockwise bool) {
	rot := FaceRotation(face, clockwise)
	for i := range f.positions {
		if InFaceLayer(i, face) {
			f.positions[i] = rot.MulVec(f.positions[i])
		}
	}
}

// SliceRotated returns the positions with the (plane, layer) slice turned
// deg degrees, as seen partway through an animated slice move. The frame
// itself is not changed.
func (f *Frame) SliceRotated(plane tesseract.Plane, layer int, deg float64) [tesseract.NumVertices]Vec4 {
	out := f.positions
	rot := Rotate(plane, deg)
	for i := range out {
		if tesseract.IsVertexInSlice(i, plane, layer) {
			out[i] = rot.MulVec(out[i])
		}
	}
	return out
}

// FaceRotated is SliceRotated for a partial cube face turn.
func (f *Frame) FaceRotated(face tesseract.Face, deg float64) [tesseract.NumVertices]Vec4 {
	out := f.positions
	rot := faceRotation(face, deg)
	for i := range out {
		if InFaceLayer(i, face) {
			out[i] = rot.MulVec(out[i])
		}
	}
	return out
}

// Projected applies the view rotation to each position and projects it
// into 3D.
func (f *Frame) Projected(view Mat4, wDistance float64) [tesseract.NumVertices]Vec3 {
	return ProjectAll(f.positions, view, wDistance)
}

// ProjectAll projects a full set of vertex positions through view.
func ProjectAll(positions [tesseract.NumVertices]Vec4, view Mat4, wDistance float64) [tesseract.NumVertices]Vec3 {
	var out [tesseract.NumVertices]Vec3
	for i, p := range positions {
		out[i] = Project(view.MulVec(p), wDistance)
	}
	return out
}
