package bounds

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// Plane is an oriented infinite plane. A point p lies on the plane when
// Normal()·p + Offset() == 0; the sign of Distance picks the half-space.
type Plane interface {
	Normal() geometry.Vector3
	Offset() float64
	// Distance is the signed distance from p to the plane
	Distance(p geometry.Vector3) float64
	// Negate flips the half-space sense without moving the plane
	Negate()
	Clone() Plane
}

// ClassifyPointPlane locates a point relative to a plane
func ClassifyPointPlane(p geometry.Vector3, plane Plane, eps float64) PlanarClassification {
	return classifyDistance(plane.Distance(p), 0, eps)
}

// Plane4 is a general plane stored as the normalized equation
// a·x + b·y + c·z + d = 0.
type Plane4 struct {
	a, b, c, d float64
}

// NewPlane4 creates a plane from its equation coefficients, normalizing
// them so that (a,b,c) is a unit vector.
func NewPlane4(a, b, c, d float64) (*Plane4, error) {
	p := &Plane4{}
	if err := p.set(geometry.NewVector3(a, b, c), d); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPlaneFromNormal creates the plane through point with the given normal
func NewPlaneFromNormal(normal, point geometry.Vector3) (*Plane4, error) {
	n := normal.Normalize()
	if n.LengthSquared() == 0 {
		return nil, fmt.Errorf("zero normal: %w", ErrDegeneratePlane)
	}
	return &Plane4{a: n.X, b: n.Y, c: n.Z, d: -n.Dot(point)}, nil
}

// NewPlaneFromPoints creates the plane through three points. The normal
// follows the right-hand rule on p1→p2→p3.
func NewPlaneFromPoints(p1, p2, p3 geometry.Vector3) (*Plane4, error) {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.LengthSquared() == 0 {
		return nil, fmt.Errorf("collinear points %v %v %v: %w", p1, p2, p3, ErrDegeneratePlane)
	}
	return NewPlaneFromNormal(normal, p1)
}

func (p *Plane4) set(normal geometry.Vector3, d float64) error {
	length := normal.Length()
	if length == 0 {
		return fmt.Errorf("zero normal: %w", ErrDegeneratePlane)
	}
	p.a = normal.X / length
	p.b = normal.Y / length
	p.c = normal.Z / length
	p.d = d / length
	return nil
}

// Normal returns the unit normal
func (p *Plane4) Normal() geometry.Vector3 {
	return geometry.NewVector3(p.a, p.b, p.c)
}

// Offset returns the d coefficient
func (p *Plane4) Offset() float64 {
	return p.d
}

// Distance returns the signed distance from point to the plane
func (p *Plane4) Distance(point geometry.Vector3) float64 {
	return p.a*point.X + p.b*point.Y + p.c*point.Z + p.d
}

// Negate flips the normal and the offset
func (p *Plane4) Negate() {
	p.a, p.b, p.c, p.d = -p.a, -p.b, -p.c, -p.d
}

// Clone returns an independent copy
func (p *Plane4) Clone() Plane {
	c := *p
	return &c
}

// Transform moves the plane by an invertible affine transform
func (p *Plane4) Transform(m mgl64.Mat4) error {
	if m.Det() == 0 {
		return fmt.Errorf("singular transform: %w", ErrDegeneratePlane)
	}
	normal := p.Normal()
	onPlane := geometry.TransformPoint(m, normal.Mul(-p.d))
	// normals transform by the inverse transpose
	transformed := geometry.TransformDirection(m.Inv().Transpose(), normal)
	if transformed.LengthSquared() == 0 {
		return fmt.Errorf("transform collapses the normal: %w", ErrDegeneratePlane)
	}
	n := transformed.Normalize()
	return p.set(n, -n.Dot(onPlane))
}

func (p *Plane4) String() string {
	return fmt.Sprintf("Plane4(%g, %g, %g, %g)", p.a, p.b, p.c, p.d)
}

// axisPlane is a plane perpendicular to one coordinate axis
type axisPlane struct {
	axis     int
	coord    float64
	negative bool
}

// Coordinate returns the position of the plane along its axis
func (p *axisPlane) Coordinate() float64 {
	return p.coord
}

// SetCoordinate moves the plane along its axis
func (p *axisPlane) SetCoordinate(coord float64) {
	p.coord = coord
}

// IsPositive reports whether the normal points along the positive axis
func (p *axisPlane) IsPositive() bool {
	return !p.negative
}

func (p *axisPlane) sign() float64 {
	if p.negative {
		return -1
	}
	return 1
}

// Normal returns the signed unit axis
func (p *axisPlane) Normal() geometry.Vector3 {
	return geometry.Vector3{}.WithComponent(p.axis, p.sign())
}

// Offset returns the d coefficient of the plane equation
func (p *axisPlane) Offset() float64 {
	return -p.sign() * p.coord
}

// Distance returns the signed distance from point to the plane
func (p *axisPlane) Distance(point geometry.Vector3) float64 {
	return p.sign() * (point.Component(p.axis) - p.coord)
}

// Negate flips the sense of the normal
func (p *axisPlane) Negate() {
	p.negative = !p.negative
}

// PlaneYZ is the plane x = coordinate
type PlaneYZ struct{ axisPlane }

// NewPlaneYZ creates the plane x = x0 with a +X normal
func NewPlaneYZ(x0 float64) *PlaneYZ {
	return &PlaneYZ{axisPlane{axis: 0, coord: x0}}
}

// Clone returns an independent copy
func (p *PlaneYZ) Clone() Plane {
	c := *p
	return &c
}

// PlaneXZ is the plane y = coordinate
type PlaneXZ struct{ axisPlane }

// NewPlaneXZ creates the plane y = y0 with a +Y normal
func NewPlaneXZ(y0 float64) *PlaneXZ {
	return &PlaneXZ{axisPlane{axis: 1, coord: y0}}
}

// Clone returns an independent copy
func (p *PlaneXZ) Clone() Plane {
	c := *p
	return &c
}

// PlaneXY is the plane z = coordinate
type PlaneXY struct{ axisPlane }

// NewPlaneXY creates the plane z = z0 with a +Z normal
func NewPlaneXY(z0 float64) *PlaneXY {
	return &PlaneXY{axisPlane{axis: 2, coord: z0}}
}

// Clone returns an independent copy
func (p *PlaneXY) Clone() Plane {
	c := *p
	return &c
}
