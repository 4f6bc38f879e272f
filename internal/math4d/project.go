package math4d

import "math"

// DefaultWDistance is the projection distance along W used when none is
// configured. Larger values flatten the perspective.
const DefaultWDistance = 4.0

// minDenominator keeps points at w = -wDistance finite.
const minDenominator = 1e-6

// Project maps p into 3D with a perspective divide along W:
// scale = wDistance / (wDistance + p.W).
func Project(p Vec4, wDistance float64) Vec3 {
	denom := wDistance + p.W
	if math.Abs(denom) < minDenominator {
		denom = minDenominator
	}
	scale := wDistance / denom
	return Vec3{p.X * scale, p.Y * scale, p.Z * scale}
}
