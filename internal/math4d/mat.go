package math4d

import (
	"math"

	"github.com/SeamusWaldron/tesseract"
)

// Mat4 is a 4x4 matrix stored column-major: element (row, col) lives at
// m[col*4+row].
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Rotate returns the rotation by deg degrees in the given plane. An
// invalid plane yields the identity.
func Rotate(plane tesseract.Plane, deg float64) Mat4 {
	if !plane.Valid() {
		return Identity()
	}
	i, j := plane.Axes()
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)

	m := Identity()
	m[i*4+i] = c
	m[i*4+j] = -s
	m[j*4+i] = s
	m[j*4+j] = c
	return m
}

// MulVec returns m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mul returns m * o; applying the result applies o first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// ViewRotation combines a rotation in XY with one in ZW, the two angles
// an interactive viewer exposes. XY is applied first.
func ViewRotation(xyDeg, zwDeg float64) Mat4 {
	return Rotate(tesseract.PlaneZW, zwDeg).Mul(Rotate(tesseract.PlaneXY, xyDeg))
}
