package bounds

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// OrientedBox is a box with its own orthonormal axes R, S, T and
// half-extents along each of them. The zero value is uninitialized.
type OrientedBox struct {
	center  geometry.Vector3
	axes    [3]geometry.Vector3
	extents [3]float64
	init    bool
	tol     Tolerance
}

// NewOrientedBox creates a box. The first two axes are orthonormalized
// and the third is rebuilt as their cross product; negative extents are
// taken as their magnitude.
func NewOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) *OrientedBox {
	b := &OrientedBox{}
	b.Set(center, axes, extents)
	return b
}

// NewOrientedBoxFromPoints fits a box to points, see SetPoints
func NewOrientedBoxFromPoints(points ...geometry.Vector3) *OrientedBox {
	b := &OrientedBox{}
	b.SetPoints(points...)
	return b
}

// WithTolerance sets the boundary tolerance and returns b
func (b *OrientedBox) WithTolerance(t Tolerance) *OrientedBox {
	b.tol = t
	return b
}

// Tolerance returns the boundary tolerance in effect
func (b *OrientedBox) Tolerance() Tolerance {
	return b.tol.orDefault()
}

func (b *OrientedBox) eps() float64 {
	return b.Tolerance().Epsilon
}

// Kind returns KindOrientedBox
func (b *OrientedBox) Kind() Kind {
	return KindOrientedBox
}

// IsInit reports whether the box has been set
func (b *OrientedBox) IsInit() bool {
	return b.init
}

// IsEmpty reports an uninitialized box or one that is flat along an axis
func (b *OrientedBox) IsEmpty() bool {
	return !b.init || b.extents[0] <= 0 || b.extents[1] <= 0 || b.extents[2] <= 0
}

// Reset makes the box uninitialized
func (b *OrientedBox) Reset() {
	b.center = geometry.Vector3{}
	b.axes = [3]geometry.Vector3{}
	b.extents = [3]float64{}
	b.init = false
}

// Set replaces the box
func (b *OrientedBox) Set(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) {
	b.center = center
	b.axes = geometry.Orthonormalize(axes[0], axes[1])
	for i, e := range extents {
		b.extents[i] = math.Abs(e)
	}
	b.init = true
}

func (b *OrientedBox) setFit(fit OrientedFit) {
	b.center = fit.Center
	b.axes = fit.Axes
	b.extents = fit.Extents
	b.init = true
}

// SetPoints fits the box to points by principal component analysis, see
// ComputeOBBCenterAxisExtents. No points leave the box uninitialized.
// Should the eigen solver fail, the world axes are used.
func (b *OrientedBox) SetPoints(points ...geometry.Vector3) {
	b.SetConstrained(ConstraintNone, points...)
}

// SetConstrained fits the box to points keeping it coplanar with the
// constraint plane.
func (b *OrientedBox) SetConstrained(constraint PlaneConstraint, points ...geometry.Vector3) {
	b.Reset()
	if len(points) == 0 {
		return
	}
	fit, err := ComputeConstrainedOBB(constraint, points)
	if err != nil {
		fit = fitAlongAxes(points, geometry.IdentityAxes())
	}
	b.setFit(fit)
}

// SetBounds replaces the box. A single volume is copied as an oriented box;
// several are fitted together through their corners.
func (b *OrientedBox) SetBounds(volumes ...Combinable) {
	b.Reset()
	var initialized []Combinable
	for _, v := range volumes {
		if v != nil && v.IsInit() {
			initialized = append(initialized, v)
		}
	}
	switch len(initialized) {
	case 0:
		return
	case 1:
		v := initialized[0]
		b.center, b.axes, b.extents, b.init = v.Center(), v.Axes(), v.Extents(), true
	default:
		b.SetPoints(collectVertices(initialized...)...)
	}
}

// CombinePoints refits the box over its own corners and points
func (b *OrientedBox) CombinePoints(points ...geometry.Vector3) {
	if len(points) == 0 {
		return
	}
	all := append(b.globalCorners(), points...)
	b.SetPoints(all...)
}

// CombineBounds refits the box over its own corners and the corners of
// volumes. This is a full refit and costs O(n) in the number of corners.
func (b *OrientedBox) CombineBounds(volumes ...Combinable) {
	if !b.init {
		b.SetBounds(volumes...)
		return
	}
	extra := collectVertices(volumes...)
	if len(extra) == 0 {
		return
	}
	b.SetPoints(append(b.globalCorners(), extra...)...)
}

func (b *OrientedBox) globalCorners() []geometry.Vector3 {
	if !b.init {
		return nil
	}
	c := corners(b.center, b.axes, b.extents)
	return c[:]
}

func collectVertices(volumes ...Combinable) []geometry.Vector3 {
	var out []geometry.Vector3
	for _, v := range volumes {
		if v == nil || !v.IsInit() {
			continue
		}
		out = append(out, v.GlobalVertices().Collect()...)
	}
	return out
}

// Clone returns an independent copy
func (b *OrientedBox) Clone() *OrientedBox {
	c := *b
	return &c
}

// Center returns the center
func (b *OrientedBox) Center() geometry.Vector3 {
	return b.center
}

// Axes returns R, S and T
func (b *OrientedBox) Axes() [3]geometry.Vector3 {
	return b.axes
}

// Extents returns the half-lengths along R, S and T
func (b *OrientedBox) Extents() [3]float64 {
	return b.extents
}

// halfSize is the half size of the aligned bounds of the box
func (b *OrientedBox) halfSize() geometry.Vector3 {
	var h geometry.Vector3
	for i := 0; i < 3; i++ {
		h = h.Add(b.axes[i].Abs().Mul(b.extents[i]))
	}
	return h
}

// Lower returns the minimum corner of the aligned bounds
func (b *OrientedBox) Lower() geometry.Vector3 {
	return b.center.Sub(b.halfSize())
}

// Upper returns the maximum corner of the aligned bounds
func (b *OrientedBox) Upper() geometry.Vector3 {
	return b.center.Add(b.halfSize())
}

// Size returns the edge lengths of the aligned bounds
func (b *OrientedBox) Size() geometry.Vector3 {
	return b.halfSize().Mul(2)
}

// Volume returns the enclosed volume
func (b *OrientedBox) Volume() float64 {
	if !b.init {
		return 0
	}
	return 8 * b.extents[0] * b.extents[1] * b.extents[2]
}

// Translate moves the center by v
func (b *OrientedBox) Translate(v geometry.Vector3) {
	b.center = b.center.Add(v)
}

// SetTranslation moves the center to center
func (b *OrientedBox) SetTranslation(center geometry.Vector3) {
	b.center = center
}

// Rotate turns the axes by q around the center
func (b *OrientedBox) Rotate(q mgl64.Quat) {
	if !b.init {
		return
	}
	b.axes = geometry.RotateAxes(q, b.axes)
}

// RotateAxisAngle is Rotate with an axis-angle rotation
func (b *OrientedBox) RotateAxisAngle(aa geometry.AxisAngle) {
	b.Rotate(aa.Quat())
}

// SetRotation replaces the axes with the world axes rotated by q
func (b *OrientedBox) SetRotation(q mgl64.Quat) {
	if !b.init {
		return
	}
	b.axes = geometry.RotateAxes(q, geometry.IdentityAxes())
}

// NearestPoint clamps p into the box along each axis
func (b *OrientedBox) NearestPoint(p geometry.Vector3) geometry.Vector3 {
	if !b.init {
		return nanVector()
	}
	nearest, _ := closestFarthestOrientedBoxPoints(p, b.center, b.axes, b.extents)
	return nearest
}

// FarthestPoint returns the corner farthest from p
func (b *OrientedBox) FarthestPoint(p geometry.Vector3) geometry.Vector3 {
	if !b.init {
		return nanVector()
	}
	_, farthest := closestFarthestOrientedBoxPoints(p, b.center, b.axes, b.extents)
	return farthest
}

// Distance returns the distance from p to the box, 0 inside
func (b *OrientedBox) Distance(p geometry.Vector3) float64 {
	return math.Sqrt(b.DistanceSquared(p))
}

// DistanceSquared sums the squared excess of p beyond the extents
func (b *OrientedBox) DistanceSquared(p geometry.Vector3) float64 {
	if !b.init {
		return math.NaN()
	}
	d := p.Sub(b.center)
	sum := 0.0
	for i := 0; i < 3; i++ {
		if excess := math.Abs(d.Dot(b.axes[i])) - b.extents[i]; excess > 0 {
			sum += excess * excess
		}
	}
	return sum
}

// DistanceMax returns the distance from p to the farthest corner
func (b *OrientedBox) DistanceMax(p geometry.Vector3) float64 {
	return math.Sqrt(b.DistanceMaxSquared(p))
}

// DistanceMaxSquared returns the squared DistanceMax
func (b *OrientedBox) DistanceMaxSquared(p geometry.Vector3) float64 {
	if !b.init {
		return math.NaN()
	}
	d := p.Sub(b.center)
	sum := 0.0
	for i := 0; i < 3; i++ {
		far := math.Abs(d.Dot(b.axes[i])) + b.extents[i]
		sum += far * far
	}
	return sum
}

// VertexCount returns 8 for an initialized box and 0 otherwise
func (b *OrientedBox) VertexCount() int {
	if !b.init {
		return 0
	}
	return VertexCount
}

// LocalVertexAt returns corner i relative to the center
func (b *OrientedBox) LocalVertexAt(i int) (geometry.Vector3, error) {
	if err := checkIndex(i, b.VertexCount()); err != nil {
		return geometry.Vector3{}, err
	}
	return localCorner(i, b.axes, b.extents)
}

// GlobalVertexAt returns corner i in world coordinates
func (b *OrientedBox) GlobalVertexAt(i int) (geometry.Vector3, error) {
	local, err := b.LocalVertexAt(i)
	if err != nil {
		return geometry.Vector3{}, err
	}
	return b.center.Add(local), nil
}

// LocalVertices iterates the corners relative to the center
func (b *OrientedBox) LocalVertices() *VertexIterator {
	return vertexIterator(b.init, geometry.Vector3{}, b.axes, b.extents)
}

// GlobalVertices iterates the corners in world coordinates
func (b *OrientedBox) GlobalVertices() *VertexIterator {
	return vertexIterator(b.init, b.center, b.axes, b.extents)
}

// ToBounds2D projects the corners onto the ground plane of cs
func (b *OrientedBox) ToBounds2D(cs geometry.CoordinateSystem3D) geometry.Rect2 {
	return projectBounds2D(b, cs)
}

// ClassifyPoint returns Inside when p is within the extents on every axis
func (b *OrientedBox) ClassifyPoint(p geometry.Vector3) IntersectionType {
	if !b.init || !pointInOrientedBox(p, b.center, b.axes, b.extents, b.eps()) {
		return Outside
	}
	return Inside
}

// IntersectsPoint reports whether p is within the box
func (b *OrientedBox) IntersectsPoint(p geometry.Vector3) bool {
	return b.ClassifyPoint(p) != Outside
}

// ClassifyBox classifies the aligned box spanned by two corners
func (b *OrientedBox) ClassifyBox(lower, upper geometry.Vector3) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifyAlignedBoxOrientedBox(lower.Min(upper), lower.Max(upper), b.center, b.axes, b.extents, b.eps())
}

// IntersectsBox reports whether the aligned box spanned by two corners touches this one
func (b *OrientedBox) IntersectsBox(lower, upper geometry.Vector3) bool {
	return b.ClassifyBox(lower, upper) != Outside
}

// ClassifySphere classifies a sphere
func (b *OrientedBox) ClassifySphere(center geometry.Vector3, radius float64) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifySphereOrientedBox(center, math.Abs(radius), b.center, b.axes, b.extents, b.eps())
}

// IntersectsSphere reports whether a sphere touches the box
func (b *OrientedBox) IntersectsSphere(center geometry.Vector3, radius float64) bool {
	return b.ClassifySphere(center, radius) != Outside
}

// ClassifyOrientedBox classifies another oriented box
func (b *OrientedBox) ClassifyOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) IntersectionType {
	if !b.init {
		return Outside
	}
	return ClassifyOrientedBoxes(center, axes, extents, b.center, b.axes, b.extents, b.eps())
}

// IntersectsOrientedBox reports whether another oriented box touches this one
func (b *OrientedBox) IntersectsOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) bool {
	return b.ClassifyOrientedBox(center, axes, extents) != Outside
}

// ClassifyAgainst locates the box relative to plane using the projected
// extent of the box on the plane normal.
func (b *OrientedBox) ClassifyAgainst(plane Plane) PlanarClassification {
	if !b.init {
		return Coincident
	}
	return classifyDistance(plane.Distance(b.center), projectedRadius(plane.Normal(), b.axes, b.extents), b.eps())
}

// ClassifyPlane returns Spanning when the plane touches the box
func (b *OrientedBox) ClassifyPlane(plane Plane) IntersectionType {
	if !b.init {
		return Outside
	}
	return b.ClassifyAgainst(plane).IntersectionType()
}

// IntersectsPlane reports whether the plane touches the box
func (b *OrientedBox) IntersectsPlane(plane Plane) bool {
	return b.ClassifyPlane(plane) != Outside
}

// Classify classifies another volume
func (b *OrientedBox) Classify(other Combinable) IntersectionType {
	if !b.init {
		return Outside
	}
	return classifyVolume(b, other)
}

// Intersects reports whether another volume touches the box
func (b *OrientedBox) Intersects(other Combinable) bool {
	return b.Classify(other) != Outside
}

func (b *OrientedBox) String() string {
	if !b.init {
		return "OrientedBox(empty)"
	}
	return fmt.Sprintf("OrientedBox(%v, %v, %v)", b.center, b.axes, b.extents)
}
