package tesseract

import "fmt"

// Axis indices of the 4D coordinate system. They double as color slot
// indices in a Vertex.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
	AxisW = 3
)

// Plane is one of the six two-axis rotation planes of 4D space.
type Plane int

const (
	PlaneXY Plane = 0
	PlaneXZ Plane = 1
	PlaneXW Plane = 2
	PlaneYZ Plane = 3
	PlaneYW Plane = 4
	PlaneZW Plane = 5
)

// NumPlanes is the number of rotation planes.
const NumPlanes = 6

// Planes lists every rotation plane in ordinal order.
var Planes = [NumPlanes]Plane{PlaneXY, PlaneXZ, PlaneXW, PlaneYZ, PlaneYW, PlaneZW}

// Valid reports whether p is one of the six planes.
func (p Plane) Valid() bool {
	return p >= 0 && p < NumPlanes
}

// Axes returns the two axes spanning the plane, lowest first.
// The result is meaningless for an invalid plane; check Valid first.
func (p Plane) Axes() (int, int) {
	switch p {
	case PlaneXY:
		return AxisX, AxisY
	case PlaneXZ:
		return AxisX, AxisZ
	case PlaneXW:
		return AxisX, AxisW
	case PlaneYZ:
		return AxisY, AxisZ
	case PlaneYW:
		return AxisY, AxisW
	case PlaneZW:
		return AxisZ, AxisW
	default:
		return -1, -1
	}
}

// FreeAxes returns the two axes not in the plane, lowest first. These
// select the layer: the first takes layer/2, the second layer%2.
func (p Plane) FreeAxes() (int, int) {
	a, b := p.Axes()
	free := make([]int, 0, 2)
	for axis := AxisX; axis <= AxisW; axis++ {
		if axis != a && axis != b {
			free = append(free, axis)
		}
	}
	if len(free) != 2 {
		return -1, -1
	}
	return free[0], free[1]
}

// Code returns the two-letter notation code, e.g. "XY".
func (p Plane) Code() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneXW:
		return "XW"
	case PlaneYZ:
		return "YZ"
	case PlaneYW:
		return "YW"
	case PlaneZW:
		return "ZW"
	default:
		return "??"
	}
}

func (p Plane) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return p.Code()
}

// ParsePlane parses a two-letter plane code.
func ParsePlane(code string) (Plane, error) {
	for _, p := range Planes {
		if p.Code() == code {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlane, code)
}
