package geometry

import (
	"fmt"
	"math"
	"strings"
)

// CoordinateSystem3D describes the axis convention of a 3D space:
// which axis points up and the handedness of the basis.
type CoordinateSystem3D int

const (
	// XZYLeftHand has Y pointing up in a left-handed basis
	XZYLeftHand CoordinateSystem3D = iota
	// XYZLeftHand has Z pointing up in a left-handed basis
	XYZLeftHand
	// XZYRightHand has Y pointing up in a right-handed basis
	XZYRightHand
	// XYZRightHand has Z pointing up in a right-handed basis
	XYZRightHand
)

// DefaultCoordinateSystem is the convention used by STL files
const DefaultCoordinateSystem = XYZRightHand

var coordinateSystemNames = [...]string{
	XZYLeftHand:  "XZY_LEFT_HAND",
	XYZLeftHand:  "XYZ_LEFT_HAND",
	XZYRightHand: "XZY_RIGHT_HAND",
	XYZRightHand: "XYZ_RIGHT_HAND",
}

func (cs CoordinateSystem3D) String() string {
	if cs < 0 || int(cs) >= len(coordinateSystemNames) {
		return fmt.Sprintf("CoordinateSystem3D(%d)", int(cs))
	}
	return coordinateSystemNames[cs]
}

// ParseCoordinateSystem3D parses a name such as "xyz_right_hand"
func ParseCoordinateSystem3D(name string) (CoordinateSystem3D, error) {
	for i, n := range coordinateSystemNames {
		if strings.EqualFold(n, name) {
			return CoordinateSystem3D(i), nil
		}
	}
	return 0, fmt.Errorf("unknown coordinate system %q", name)
}

// IsRightHanded reports the handedness of the basis
func (cs CoordinateSystem3D) IsRightHanded() bool {
	return cs == XZYRightHand || cs == XYZRightHand
}

// IsZOnUp reports whether Z is the vertical axis
func (cs CoordinateSystem3D) IsZOnUp() bool {
	return cs == XYZLeftHand || cs == XYZRightHand
}

// UpVector returns the unit vector pointing up in this convention
func (cs CoordinateSystem3D) UpVector() Vector3 {
	if cs.IsZOnUp() {
		return UnitZ
	}
	return UnitY
}

// ToCoordinateSystem2D drops the vertical axis of p
func (cs CoordinateSystem3D) ToCoordinateSystem2D(p Vector3) Point2 {
	if cs.IsZOnUp() {
		return Point2{X: p.X, Y: p.Y}
	}
	return Point2{X: p.X, Y: p.Z}
}

// Point2 is a point on the ground plane of a coordinate system
type Point2 struct {
	X, Y float64
}

// Rect2 is an axis-aligned rectangle on the ground plane
type Rect2 struct {
	Min, Max Point2
}

// EmptyRect2 returns a rectangle that any Extend call will replace
func EmptyRect2() Rect2 {
	return Rect2{
		Min: Point2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows the rectangle to contain p
func (r Rect2) Extend(p Point2) Rect2 {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// IsEmpty reports whether the rectangle has been extended at least once
func (r Rect2) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the extent along X
func (r Rect2) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the extent along Y
func (r Rect2) Height() float64 {
	return r.Max.Y - r.Min.Y
}
