package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// Sphere is a bounding sphere. The zero value is uninitialized; a radius
// of zero is a valid point volume.
type Sphere struct {
	center geometry.Vector3
	radius float64
	init   bool
	tol    Tolerance
}

// NewSphere creates a sphere. A negative radius is taken as its magnitude.
func NewSphere(center geometry.Vector3, radius float64) *Sphere {
	s := &Sphere{}
	s.Set(center, radius)
	return s
}

// NewSphereFromPoints creates a sphere enclosing points, see SetPoints
func NewSphereFromPoints(points ...geometry.Vector3) *Sphere {
	s := &Sphere{}
	s.SetPoints(points...)
	return s
}

// WithTolerance sets the boundary tolerance and returns s
func (s *Sphere) WithTolerance(t Tolerance) *Sphere {
	s.tol = t
	return s
}

// Tolerance returns the boundary tolerance in effect
func (s *Sphere) Tolerance() Tolerance {
	return s.tol.orDefault()
}

func (s *Sphere) eps() float64 {
	return s.Tolerance().Epsilon
}

// Kind returns KindSphere
func (s *Sphere) Kind() Kind {
	return KindSphere
}

// IsInit reports whether the sphere has been set
func (s *Sphere) IsInit() bool {
	return s.init
}

// IsEmpty reports an uninitialized sphere or one of radius zero
func (s *Sphere) IsEmpty() bool {
	return !s.init || s.radius <= 0
}

// Reset makes the sphere uninitialized
func (s *Sphere) Reset() {
	s.center = geometry.Vector3{}
	s.radius = 0
	s.init = false
}

// Set replaces center and radius
func (s *Sphere) Set(center geometry.Vector3, radius float64) {
	s.center = center
	s.radius = math.Abs(radius)
	s.init = true
}

// SetPoints replaces the sphere with one enclosing points. The center is
// the middle of the points' aligned bounds and the radius the largest
// distance to it, which is not the minimal enclosing sphere.
func (s *Sphere) SetPoints(points ...geometry.Vector3) {
	s.Reset()
	if len(points) == 0 {
		return
	}
	lower, upper := points[0], points[0]
	for _, p := range points[1:] {
		lower = lower.Min(p)
		upper = upper.Max(p)
	}
	center := lower.Midpoint(upper)
	radius := 0.0
	for _, p := range points {
		radius = math.Max(radius, center.Distance(p))
	}
	s.Set(center, radius)
}

// SetBounds replaces the sphere with one enclosing volumes
func (s *Sphere) SetBounds(volumes ...Combinable) {
	s.Reset()
	s.CombineBounds(volumes...)
}

// CombinePoints grows the sphere point by point. A point outside moves the
// center toward it and sets the radius to the mean of the old radius and
// the point distance, so both the point and the old sphere stay enclosed.
func (s *Sphere) CombinePoints(points ...geometry.Vector3) {
	for _, p := range points {
		if !s.init {
			s.Set(p, 0)
			continue
		}
		d := s.center.Distance(p)
		if d <= s.radius {
			continue
		}
		r := (d + s.radius) / 2
		s.center = p.Add(s.center.Sub(p).Normalize().Mul(r))
		s.radius = r
	}
}

// CombineBounds grows the sphere to enclose each volume. A volume whose
// farthest point is within the radius leaves the sphere unchanged.
// Otherwise the new diameter is the largest of both diameters and the
// center distance plus both radii, using the circumscribed sphere of the
// volume; ties keep the current center.
func (s *Sphere) CombineBounds(volumes ...Combinable) {
	for _, v := range volumes {
		if v == nil || !v.IsInit() {
			continue
		}
		oc := v.Center()
		or := v.DistanceMax(oc)
		if !s.init {
			s.Set(oc, or)
			continue
		}
		if v.DistanceMax(s.center) <= s.radius+s.eps() {
			continue
		}

		offset := s.center.Sub(oc)
		dist := offset.Length()
		d1 := 2 * s.radius
		d2 := 2 * or
		d3 := dist + s.radius + or
		switch {
		case d1 >= d2 && d1 >= d3:
			// already enclosed
		case d2 >= d3:
			s.center, s.radius = oc, or
		default:
			// midpoint of the two far ends along the center line
			s.center = oc.Add(offset.Mul((dist + s.radius - or) / (2 * dist)))
			s.radius = d3 / 2
		}
	}
}

// Clone returns an independent copy
func (s *Sphere) Clone() *Sphere {
	c := *s
	return &c
}

// Center returns the center
func (s *Sphere) Center() geometry.Vector3 {
	return s.center
}

// Radius returns the radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Lower returns the minimum corner of the enclosing cube
func (s *Sphere) Lower() geometry.Vector3 {
	return s.center.Sub(geometry.NewVector3(s.radius, s.radius, s.radius))
}

// Upper returns the maximum corner of the enclosing cube
func (s *Sphere) Upper() geometry.Vector3 {
	return s.center.Add(geometry.NewVector3(s.radius, s.radius, s.radius))
}

// Size returns the diameter on each axis
func (s *Sphere) Size() geometry.Vector3 {
	d := 2 * s.radius
	return geometry.NewVector3(d, d, d)
}

// Axes returns the world axes
func (s *Sphere) Axes() [3]geometry.Vector3 {
	return geometry.IdentityAxes()
}

// Extents returns the radius on each axis
func (s *Sphere) Extents() [3]float64 {
	return [3]float64{s.radius, s.radius, s.radius}
}

// Volume returns the enclosed volume
func (s *Sphere) Volume() float64 {
	if !s.init {
		return 0
	}
	return 4.0 / 3.0 * math.Pi * s.radius * s.radius * s.radius
}

// Translate moves the center by v
func (s *Sphere) Translate(v geometry.Vector3) {
	s.center = s.center.Add(v)
}

// SetTranslation moves the center to center
func (s *Sphere) SetTranslation(center geometry.Vector3) {
	s.center = center
}

// Rotate does nothing: a sphere is invariant under rotation about its center
func (s *Sphere) Rotate(mgl64.Quat) {}

// RotateAxisAngle does nothing, see Rotate
func (s *Sphere) RotateAxisAngle(geometry.AxisAngle) {}

// NearestPoint returns p when inside, else its projection on the surface
func (s *Sphere) NearestPoint(p geometry.Vector3) geometry.Vector3 {
	if !s.init {
		return nanVector()
	}
	d := p.Sub(s.center)
	if d.Length() <= s.radius {
		return p
	}
	return s.center.Add(d.Normalize().Mul(s.radius))
}

// FarthestPoint returns the surface point opposite to p
func (s *Sphere) FarthestPoint(p geometry.Vector3) geometry.Vector3 {
	if !s.init {
		return nanVector()
	}
	d := s.center.Sub(p)
	if d.LengthSquared() == 0 {
		return s.center.Add(geometry.NewVector3(s.radius, 0, 0))
	}
	return s.center.Add(d.Normalize().Mul(s.radius))
}

// Distance returns the distance from p to the sphere, 0 inside
func (s *Sphere) Distance(p geometry.Vector3) float64 {
	if !s.init {
		return math.NaN()
	}
	return math.Max(0, s.center.Distance(p)-s.radius)
}

// DistanceSquared returns the squared distance from p to the sphere
func (s *Sphere) DistanceSquared(p geometry.Vector3) float64 {
	d := s.Distance(p)
	return d * d
}

// DistanceMax returns the distance from p to the farthest surface point
func (s *Sphere) DistanceMax(p geometry.Vector3) float64 {
	if !s.init {
		return math.NaN()
	}
	return s.center.Distance(p) + s.radius
}

// DistanceMaxSquared returns the squared DistanceMax
func (s *Sphere) DistanceMaxSquared(p geometry.Vector3) float64 {
	d := s.DistanceMax(p)
	return d * d
}

// VertexCount returns 8 for an initialized sphere and 0 otherwise
func (s *Sphere) VertexCount() int {
	if !s.init {
		return 0
	}
	return VertexCount
}

// LocalVertexAt returns corner i of the enclosing cube relative to the center
func (s *Sphere) LocalVertexAt(i int) (geometry.Vector3, error) {
	if err := checkIndex(i, s.VertexCount()); err != nil {
		return geometry.Vector3{}, err
	}
	return localCorner(i, geometry.IdentityAxes(), s.Extents())
}

// GlobalVertexAt returns corner i of the enclosing cube
func (s *Sphere) GlobalVertexAt(i int) (geometry.Vector3, error) {
	local, err := s.LocalVertexAt(i)
	if err != nil {
		return geometry.Vector3{}, err
	}
	return s.center.Add(local), nil
}

// LocalVertices iterates the enclosing cube corners relative to the center
func (s *Sphere) LocalVertices() *VertexIterator {
	return vertexIterator(s.init, geometry.Vector3{}, geometry.IdentityAxes(), s.Extents())
}

// GlobalVertices iterates the enclosing cube corners
func (s *Sphere) GlobalVertices() *VertexIterator {
	return vertexIterator(s.init, s.center, geometry.IdentityAxes(), s.Extents())
}

// ToBounds2D projects the enclosing cube onto the ground plane of cs
func (s *Sphere) ToBounds2D(cs geometry.CoordinateSystem3D) geometry.Rect2 {
	if !s.init {
		return geometry.EmptyRect2()
	}
	return geometry.EmptyRect2().
		Extend(cs.ToCoordinateSystem2D(s.Lower())).
		Extend(cs.ToCoordinateSystem2D(s.Upper()))
}

// ClassifyPoint returns Inside when p is within the sphere
func (s *Sphere) ClassifyPoint(p geometry.Vector3) IntersectionType {
	if !s.init || s.center.Distance(p) > s.radius+s.eps() {
		return Outside
	}
	return Inside
}

// IntersectsPoint reports whether p is within the sphere
func (s *Sphere) IntersectsPoint(p geometry.Vector3) bool {
	return s.ClassifyPoint(p) != Outside
}

// ClassifyBox classifies the box spanned by two corners
func (s *Sphere) ClassifyBox(lower, upper geometry.Vector3) IntersectionType {
	if !s.init {
		return Outside
	}
	return ClassifySphereAlignedBox(s.center, s.radius, lower.Min(upper), lower.Max(upper), s.eps()).Invert()
}

// IntersectsBox reports whether the box spanned by two corners touches the sphere
func (s *Sphere) IntersectsBox(lower, upper geometry.Vector3) bool {
	return s.ClassifyBox(lower, upper) != Outside
}

// ClassifySphere classifies another sphere
func (s *Sphere) ClassifySphere(center geometry.Vector3, radius float64) IntersectionType {
	if !s.init {
		return Outside
	}
	return ClassifySpheres(center, math.Abs(radius), s.center, s.radius, s.eps())
}

// IntersectsSphere reports whether another sphere touches this one
func (s *Sphere) IntersectsSphere(center geometry.Vector3, radius float64) bool {
	return s.ClassifySphere(center, radius) != Outside
}

// ClassifyOrientedBox classifies an oriented box
func (s *Sphere) ClassifyOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) IntersectionType {
	if !s.init {
		return Outside
	}
	return ClassifySphereOrientedBox(s.center, s.radius, center, axes, extents, s.eps()).Invert()
}

// IntersectsOrientedBox reports whether an oriented box touches the sphere
func (s *Sphere) IntersectsOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) bool {
	return s.ClassifyOrientedBox(center, axes, extents) != Outside
}

// ClassifyAgainst locates the sphere relative to plane
func (s *Sphere) ClassifyAgainst(plane Plane) PlanarClassification {
	if !s.init {
		return Coincident
	}
	return classifyDistance(plane.Distance(s.center), s.radius, s.eps())
}

// ClassifyPlane returns Spanning when the plane touches the sphere
func (s *Sphere) ClassifyPlane(plane Plane) IntersectionType {
	if !s.init {
		return Outside
	}
	return s.ClassifyAgainst(plane).IntersectionType()
}

// IntersectsPlane reports whether the plane touches the sphere
func (s *Sphere) IntersectsPlane(plane Plane) bool {
	return s.ClassifyPlane(plane) != Outside
}

// Classify classifies another volume
func (s *Sphere) Classify(other Combinable) IntersectionType {
	if !s.init {
		return Outside
	}
	return classifyVolume(s, other)
}

// Intersects reports whether another volume touches the sphere
func (s *Sphere) Intersects(other Combinable) bool {
	return s.Classify(other) != Outside
}

func (s *Sphere) String() string {
	if !s.init {
		return "Sphere(empty)"
	}
	return fmt.Sprintf("Sphere(%v, %g)", s.center, s.radius)
}
