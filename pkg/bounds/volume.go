package bounds

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// ErrUnknownKind is returned when parsing an unsupported volume kind name
var ErrUnknownKind = errors.New("unknown volume kind")

// Combinable is the lifecycle and geometry contract of a bounding volume.
//
// A volume starts uninitialized. SetPoints or SetBounds initialize it,
// CombinePoints and CombineBounds grow it, Reset makes it uninitialized
// again. Derived quantities of an uninitialized volume are meaningless;
// distances report NaN.
type Combinable interface {
	Kind() Kind
	IsInit() bool
	// IsEmpty reports an uninitialized volume or one without interior
	IsEmpty() bool
	Reset()

	Center() geometry.Vector3
	Lower() geometry.Vector3
	Upper() geometry.Vector3
	Size() geometry.Vector3
	// Axes and Extents describe the volume as an oriented box
	Axes() [3]geometry.Vector3
	Extents() [3]float64
	Volume() float64

	SetPoints(points ...geometry.Vector3)
	SetBounds(volumes ...Combinable)
	CombinePoints(points ...geometry.Vector3)
	CombineBounds(volumes ...Combinable)

	Translate(v geometry.Vector3)
	SetTranslation(center geometry.Vector3)
	Rotate(q mgl64.Quat)
	RotateAxisAngle(aa geometry.AxisAngle)

	Distance(p geometry.Vector3) float64
	DistanceSquared(p geometry.Vector3) float64
	DistanceMax(p geometry.Vector3) float64
	DistanceMaxSquared(p geometry.Vector3) float64
	NearestPoint(p geometry.Vector3) geometry.Vector3
	FarthestPoint(p geometry.Vector3) geometry.Vector3

	VertexCount() int
	LocalVertexAt(i int) (geometry.Vector3, error)
	GlobalVertexAt(i int) (geometry.Vector3, error)
	LocalVertices() *VertexIterator
	GlobalVertices() *VertexIterator

	ToBounds2D(cs geometry.CoordinateSystem3D) geometry.Rect2
}

// Classifier locates other geometry relative to a volume. The receiver is
// the reference: Inside means the argument lies within the receiver,
// Enclosing means the argument contains it.
type Classifier interface {
	ClassifyPoint(p geometry.Vector3) IntersectionType
	IntersectsPoint(p geometry.Vector3) bool
	ClassifyBox(lower, upper geometry.Vector3) IntersectionType
	IntersectsBox(lower, upper geometry.Vector3) bool
	ClassifySphere(center geometry.Vector3, radius float64) IntersectionType
	IntersectsSphere(center geometry.Vector3, radius float64) bool
	ClassifyOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) IntersectionType
	IntersectsOrientedBox(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) bool
	ClassifyPlane(plane Plane) IntersectionType
	IntersectsPlane(plane Plane) bool
	ClassifyAgainst(plane Plane) PlanarClassification
	Classify(other Combinable) IntersectionType
	Intersects(other Combinable) bool
}

// Volume is a bounding volume: combinable and classifiable
type Volume interface {
	Combinable
	Classifier
}

var (
	_ Volume = (*AlignedBox)(nil)
	_ Volume = (*Sphere)(nil)
	_ Volume = (*OrientedBox)(nil)
)

// Kind tags the concrete representation of a volume
type Kind int

const (
	// KindAlignedBox is an axis-aligned box
	KindAlignedBox Kind = iota
	// KindSphere is a bounding sphere
	KindSphere
	// KindOrientedBox is an oriented box
	KindOrientedBox
)

func (k Kind) String() string {
	switch k {
	case KindAlignedBox:
		return "aabb"
	case KindSphere:
		return "sphere"
	case KindOrientedBox:
		return "obb"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "aabb", "sphere" or "obb"
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "aabb", "box":
		return KindAlignedBox, nil
	case "sphere":
		return KindSphere, nil
	case "obb", "oriented":
		return KindOrientedBox, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// NewVolume returns an uninitialized volume of the given kind
func NewVolume(kind Kind, tol Tolerance) (Volume, error) {
	switch kind {
	case KindAlignedBox:
		return (&AlignedBox{}).WithTolerance(tol), nil
	case KindSphere:
		return (&Sphere{}).WithTolerance(tol), nil
	case KindOrientedBox:
		return (&OrientedBox{}).WithTolerance(tol), nil
	}
	return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
}

// Clone returns an independent deep copy of v
func Clone(v Volume) Volume {
	switch b := v.(type) {
	case *AlignedBox:
		return b.Clone()
	case *Sphere:
		return b.Clone()
	case *OrientedBox:
		return b.Clone()
	}
	return nil
}

// classifyVolume dispatches a classification on the concrete kind of other
func classifyVolume(c Classifier, other Combinable) IntersectionType {
	if other == nil || !other.IsInit() {
		return Outside
	}
	switch o := other.(type) {
	case *AlignedBox:
		return c.ClassifyBox(o.lower, o.upper)
	case *Sphere:
		return c.ClassifySphere(o.center, o.radius)
	}
	return c.ClassifyOrientedBox(other.Center(), other.Axes(), other.Extents())
}

// vertexIterator builds an iterator over the corners of a volume
func vertexIterator(init bool, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) *VertexIterator {
	if !init {
		return newVertexIterator([VertexCount]geometry.Vector3{}, 0)
	}
	return newVertexIterator(corners(center, axes, extents), VertexCount)
}

// projectBounds2D projects the corners of a volume onto the ground plane
func projectBounds2D(v Combinable, cs geometry.CoordinateSystem3D) geometry.Rect2 {
	r := geometry.EmptyRect2()
	it := v.GlobalVertices()
	for it.Next() {
		r = r.Extend(cs.ToCoordinateSystem2D(it.Vertex()))
	}
	return r
}

func nanVector() geometry.Vector3 {
	return geometry.NewVector3(math.NaN(), math.NaN(), math.NaN())
}
