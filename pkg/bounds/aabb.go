package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// AlignedBox is an axis-aligned bounding box stored as its lower and upper
// corners. The zero value is an uninitialized box.
type AlignedBox struct {
	lower, upper geometry.Vector3
	init         bool
	tol          Tolerance
}

// NewAlignedBox creates a box from two opposite corners in any order
func NewAlignedBox(lower, upper geometry.Vector3) *AlignedBox {
	b := &AlignedBox{}
	b.Set(lower, upper)
	return b
}

// NewAlignedBoxFromPoints creates the smallest box containing points
func NewAlignedBoxFromPoints(points ...geometry.Vector3) *AlignedBox {
	b := &AlignedBox{}
	b.SetPoints(points...)
	return b
}

// WithTolerance sets the boundary tolerance and returns b
func (b *AlignedBox) WithTolerance(t Tolerance) *AlignedBox {
	b.tol = t
	return b
}

// Tolerance returns the boundary tolerance in effect
func (b *AlignedBox) Tolerance() Tolerance {
	return b.tol.orDefault()
}

func (b *AlignedBox) eps() float64 {
	return b.Tolerance().Epsilon
}

// Kind returns KindAlignedBox
func (b *AlignedBox) Kind() Kind {
	return KindAlignedBox
}

// IsInit reports whether the box has been set
func (b *AlignedBox) IsInit() bool {
	return b.init
}

// IsEmpty reports an uninitialized box or one that is flat on some axis
func (b *AlignedBox) IsEmpty() bool {
	if !b.init {
		return true
	}
	size := b.Size()
	return size.X <= 0 || size.Y <= 0 || size.Z <= 0
}

// Reset makes the box uninitialized
func (b *AlignedBox) Reset() {
	b.lower = geometry.Vector3{}
	b.upper = geometry.Vector3{}
	b.init = false
}

// Set replaces the corners. Reversed coordinates are swapped per axis.
func (b *AlignedBox) Set(lower, upper geometry.Vector3) {
	b.lower = lower.Min(upper)
	b.upper = lower.Max(upper)
	b.init = true
}

// SetPoints replaces the box with the bounds of points. No points leave
// the box uninitialized.
func (b *AlignedBox) SetPoints(points ...geometry.Vector3) {
	b.Reset()
	b.CombinePoints(points...)
}

// SetBounds replaces the box with the union of the corners of volumes
func (b *AlignedBox) SetBounds(volumes ...Combinable) {
	b.Reset()
	b.CombineBounds(volumes...)
}

// CombinePoints grows the box to contain points
func (b *AlignedBox) CombinePoints(points ...geometry.Vector3) {
	for _, p := range points {
		b.extend(p, p)
	}
}

// CombineBounds grows the box to contain the extremal corners of volumes
func (b *AlignedBox) CombineBounds(volumes ...Combinable) {
	for _, v := range volumes {
		if v == nil || !v.IsInit() {
			continue
		}
		b.extend(v.Lower(), v.Upper())
	}
}

func (b *AlignedBox) extend(lower, upper geometry.Vector3) {
	if !b.init {
		b.lower, b.upper, b.init = lower, upper, true
		return
	}
	b.lower = b.lower.Min(lower)
	b.upper = b.upper.Max(upper)
}

// Clone returns an independent copy
func (b *AlignedBox) Clone() *AlignedBox {
	c := *b
	return &c
}

// Lower returns the minimum corner
func (b *AlignedBox) Lower() geometry.Vector3 {
	return b.lower
}

// Upper returns the maximum corner
func (b *AlignedBox) Upper() geometry.Vector3 {
	return b.upper
}

// Center returns the midpoint of the corners
func (b *AlignedBox) Center() geometry.Vector3 {
	return b.lower.Midpoint(b.upper)
}

// Size returns the edge lengths
func (b *AlignedBox) Size() geometry.Vector3 {
	return b.upper.Sub(b.lower)
}

// Axes returns the world axes
func (b *AlignedBox) Axes() [3]geometry.Vector3 {
	return geometry.IdentityAxes()
}

// Extents returns the half edge lengths
func (b *AlignedBox) Extents() [3]float64 {
	_, e := boxCenterExtents(b.lower, b.upper)
	return e
}

// Volume returns the enclosed volume
func (b *AlignedBox) Volume() float64 {
	if !b.init {
		return 0
	}
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Translate moves both corners by v
func (b *AlignedBox) Translate(v geometry.Vector3) {
	b.lower = b.lower.Add(v)
	b.upper = b.upper.Add(v)
}

// SetTranslation moves the box so that its center is at center
func (b *AlignedBox) SetTranslation(center geometry.Vector3) {
	b.Translate(center.Sub(b.Center()))
}

// Rotate rotates the box around its center and replaces it with the
// aligned bounds of the rotated corners.
func (b *AlignedBox) Rotate(q mgl64.Quat) {
	if !b.init {
		return
	}
	center := b.Center()
	rotated := &AlignedBox{}
	it := b.LocalVertices()
	for it.Next() {
		rotated.CombinePoints(center.Add(geometry.Rotate(q, it.Vertex())))
	}
	b.lower, b.upper = rotated.lower, rotated.upper
}

// RotateAxisAngle is Rotate with an axis-angle rotation
func (b *AlignedBox) RotateAxisAngle(aa geometry.AxisAngle) {
	b.Rotate(aa.Quat())
}

// Transform replaces the box with the aligned bounds of its corners
// transformed by m.
func (b *AlignedBox) Transform(m mgl64.Mat4) {
	if !b.init {
		return
	}
	transformed := &AlignedBox{}
	it := b.GlobalVertices()
	for it.Next() {
		transformed.CombinePoints(geometry.TransformPoint(m, it.Vertex()))
	}
	b.lower, b.upper = transformed.lower, transformed.upper
}

// NearestPoint clamps p into the box
func (b *AlignedBox) NearestPoint(p geometry.Vector3) geometry.Vector3 {
	if !b.init {
		return nanVector()
	}
	return clampToBox(p, b.lower, b.upper)
}

// FarthestPoint returns the corner farthest from p
func (b *AlignedBox) FarthestPoint(p geometry.Vector3) geometry.Vector3 {
	if !b.init {
		return nanVector()
	}
	return farthestBoxCorner(p, b.lower, b.upper)
}

// Distance returns the distance from p to the box, 0 inside
func (b *AlignedBox) Distance(p geometry.Vector3) float64 {
	return math.Sqrt(b.DistanceSquared(p))
}

// DistanceSquared returns the squared distance from p to the box
func (b *AlignedBox) DistanceSquared(p geometry.Vector3) float64 {
	if !b.init {
		return math.NaN()
	}
	return p.DistanceSquared(b.NearestPoint(p))
}

// DistanceMax returns the distance from p to the farthest corner
func (b *AlignedBox) DistanceMax(p geometry.Vector3) float64 {
	return math.Sqrt(b.DistanceMaxSquared(p))
}

// DistanceMaxSquared returns the squared distance to the farthest corner
func (b *AlignedBox) DistanceMaxSquared(p geometry.Vector3) float64 {
	if !b.init {
		return math.NaN()
	}
	return p.DistanceSquared(b.FarthestPoint(p))
}

// VertexCount returns 8 for an initialized box and 0 otherwise
func (b *AlignedBox) VertexCount() int {
	if !b.init {
		return 0
	}
	return VertexCount
}

// LocalVertexAt returns corner i relative to the center
func (b *AlignedBox) LocalVertexAt(i int) (geometry.Vector3, error) {
	if err := checkIndex(i, b.VertexCount()); err != nil {
		return geometry.Vector3{}, err
	}
	return localCorner(i, geometry.IdentityAxes(), b.Extents())
}

// GlobalVertexAt returns corner i in world coordinates
func (b *AlignedBox) GlobalVertexAt(i int) (geometry.Vector3, error) {
	local, err := b.LocalVertexAt(i)
	if err != nil {
		return geometry.Vector3{}, err
	}
	return b.Center().Add(local), nil
}

// LocalVertices iterates the corners relative to the center
func (b *AlignedBox) LocalVertices() *VertexIterator {
	return vertexIterator(b.init, geometry.Vector3{}, geometry.IdentityAxes(), b.Extents())
}

// GlobalVertices iterates the corners in world coordinates
func (b *AlignedBox) GlobalVertices() *VertexIterator {
	return vertexIterator(b.init, b.Center(), geometry.IdentityAxes(), b.Extents())
}

// ToBounds2D projects the box onto the ground plane of cs
func (b *AlignedBox) ToBounds2D(cs geometry.CoordinateSystem3D) geometry.Rect2 {
	if !b.init {
		return geometry.EmptyRect2()
	}
	return geometry.EmptyRect2().
		Extend(cs.ToCoordinateSystem2D(b.lower)).
		Extend(cs.ToCoordinateSystem2D(b.upper))
}

// ClassifyPoint returns Inside when p is within the box, boundary included
func (b *AlignedBox) ClassifyPoint(p geometry.Vector3) IntersectionType {
	if !b.init {
		return Outside
	}
	eps := b.eps()
	if p.X < b.lower.X-eps || p.X > b.upper.X+eps ||
		p.Y < b.lower.Y-eps || p.Y > b.upper.Y+eps ||
		p.Z < b.lower.Z-eps || p.Z > b.upper.Z+eps {
		return Outside
	}
	return Inside
}

// IntersectsPoint reports whether p is within the box
func (b *AlignedBox) IntersectsPoint(p geometry.Vector3) bool {
	return b.ClassifyPoint(p) != Outside
}

// ClassifyBox classifies the box spanned by two corners
func (b *AlignedBox) ClassifyBox(lower, upper geometry.Vector3) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifyAlignedBoxes(lower.Min(upper), lower.Max(upper), b.lower, b.upper, b.eps())
}

// IntersectsBox reports whether the box spanned by two corners touches this one
func (b *AlignedBox) IntersectsBox(lower, upper geometry.Vector3) bool {
	return b.init && IntersectsAlignedBoxes(lower.Min(upper), lower.Max(upper), b.lower, b.upper, b.eps())
}

// ClassifySphere classifies a sphere
func (b *AlignedBox) ClassifySphere(center geometry.Vector3, radius float64) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifySphereAlignedBox(center, radius, b.lower, b.upper, b.eps())
}

// IntersectsSphere reports whether a sphere touches the box
func (b *AlignedBox) IntersectsSphere(center geometry.Vector3, radius float64) bool {
	return b.ClassifySphere(center, radius) != Outside
}

// ClassifyOrientedBox classifies an oriented box
func (b *AlignedBox) ClassifyOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifyAlignedBoxOrientedBox(b.lower, b.upper, center, axes, extents, b.eps()).Invert()
}

// IntersectsOrientedBox reports whether an oriented box touches the box
func (b *AlignedBox) IntersectsOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) bool {
	return b.ClassifyOrientedBox(center, axes, extents) != Outside
}

// ClassifyAgainst locates the box relative to plane
func (b *AlignedBox) ClassifyAgainst(plane Plane) PlanarClassification {
	if !b.init {
		return Coincident
	}
	c, e := boxCenterExtents(b.lower, b.upper)
	return classifyDistance(plane.Distance(c), projectedRadius(plane.Normal(), geometry.IdentityAxes(), e), b.eps())
}

// ClassifyPlane returns Spanning when the plane touches the box
func (b *AlignedBox) ClassifyPlane(plane Plane) IntersectionType {
	if !b.init {
		return Outside
	}
	return b.ClassifyAgainst(plane).IntersectionType()
}

// IntersectsPlane reports whether the plane touches the box
func (b *AlignedBox) IntersectsPlane(plane Plane) bool {
	return b.ClassifyPlane(plane) != Outside
}

// Classify classifies another volume
func (b *AlignedBox) Classify(other Combinable) IntersectionType {
	if !b.init {
		return Outside
	}
	return classifyVolume(b, other)
}

// Intersects reports whether another volume touches the box
func (b *AlignedBox) Intersects(other Combinable) bool {
	return b.Classify(other) != Outside
}

func (b *AlignedBox) String() string {
	if !b.init {
		return "AlignedBox(empty)"
	}
	return fmt.Sprintf("AlignedBox(%v, %v)", b.lower, b.upper)
}
