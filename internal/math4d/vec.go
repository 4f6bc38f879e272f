// Package math4d holds the 4D geometry used to view the tesseract: plane
// rotations, perspective projection into 3D and the hypercube frame whose
// vertices follow the inner cube's face turns.
package math4d

import "math"

// Vec4 is a point or direction in 4D space.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec3 is a projected point in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v multiplied by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Length returns the Euclidean norm of v.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Axis returns the coordinate along axis 0..3 (X, Y, Z, W).
func (v Vec4) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	return 0
}

// Finite reports whether every coordinate is a finite number.
func (v Vec3) Finite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
