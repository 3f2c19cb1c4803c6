package bounds

import (
	"math"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// The functions below classify their first volume relative to the second:
// Inside when the first lies within the second, Enclosing when the first
// contains the second. Boundaries are closed; touching volumes span.

// ClassifyAlignedBoxes classifies the box [l1,u1] relative to [l2,u2]
func ClassifyAlignedBoxes(l1, u1, l2, u2 geometry.Vector3, eps float64) IntersectionType {
	result := Same
	for i := 0; i < 3; i++ {
		r := classifyIntervals(l1.Component(i), u1.Component(i), l2.Component(i), u2.Component(i), eps)
		if r == Outside {
			return Outside
		}
		result = And(result, r)
	}
	return result
}

// IntersectsAlignedBoxes reports whether two boxes share at least one point
func IntersectsAlignedBoxes(l1, u1, l2, u2 geometry.Vector3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if u1.Component(i) < l2.Component(i)-eps || u2.Component(i) < l1.Component(i)-eps {
			return false
		}
	}
	return true
}

func classifyIntervals(l1, u1, l2, u2, eps float64) IntersectionType {
	if u1 < l2-eps || u2 < l1-eps {
		return Outside
	}
	return containment(
		l1 >= l2-eps && u1 <= u2+eps,
		l2 >= l1-eps && u2 <= u1+eps,
	)
}

// ClassifySpheres classifies sphere (c1,r1) relative to sphere (c2,r2)
func ClassifySpheres(c1 geometry.Vector3, r1 float64, c2 geometry.Vector3, r2 float64, eps float64) IntersectionType {
	d := c1.Distance(c2)
	if d > r1+r2+eps {
		return Outside
	}
	return containment(d+r1 <= r2+eps, d+r2 <= r1+eps)
}

// ClassifySphereAlignedBox classifies sphere (c,r) relative to box [l,u]
func ClassifySphereAlignedBox(c geometry.Vector3, r float64, l, u geometry.Vector3, eps float64) IntersectionType {
	if c.Distance(clampToBox(c, l, u)) > r+eps {
		return Outside
	}

	in := true
	for i := 0; i < 3; i++ {
		ci := c.Component(i)
		if ci-r < l.Component(i)-eps || ci+r > u.Component(i)+eps {
			in = false
			break
		}
	}
	encloses := c.Distance(farthestBoxCorner(c, l, u)) <= r+eps
	return containment(in, encloses)
}

// ClassifySphereOrientedBox classifies sphere (c,r) relative to an oriented box
func ClassifySphereOrientedBox(c geometry.Vector3, r float64, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64, eps float64) IntersectionType {
	nearest, farthest := closestFarthestOrientedBoxPoints(c, center, axes, extents)
	if c.Distance(nearest) > r+eps {
		return Outside
	}

	d := c.Sub(center)
	in := true
	for i := 0; i < 3; i++ {
		if math.Abs(d.Dot(axes[i]))+r > extents[i]+eps {
			in = false
			break
		}
	}
	encloses := c.Distance(farthest) <= r+eps
	return containment(in, encloses)
}

// ClassifyOrientedBoxes classifies oriented box 1 relative to oriented box 2.
// Disjointness is decided on the 15 separating axes of the pair,
// containment by testing the corners of each box against the other.
func ClassifyOrientedBoxes(
	c1 geometry.Vector3, a1 [3]geometry.Vector3, e1 [3]float64,
	c2 geometry.Vector3, a2 [3]geometry.Vector3, e2 [3]float64,
	eps float64,
) IntersectionType {
	if orientedBoxesGap(c1, a1, e1, c2, a2, e2, eps) > eps {
		return Outside
	}
	return containment(
		cornersInOrientedBox(corners(c1, a1, e1), c2, a2, e2, eps),
		cornersInOrientedBox(corners(c2, a2, e2), c1, a1, e1, eps),
	)
}

// ClassifyAlignedBoxOrientedBox classifies box [l,u] relative to an oriented box
func ClassifyAlignedBoxOrientedBox(l, u geometry.Vector3, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64, eps float64) IntersectionType {
	bc, be := boxCenterExtents(l, u)
	return ClassifyOrientedBoxes(bc, geometry.IdentityAxes(), be, center, axes, extents, eps)
}

// ClosestFarthestOrientedBoxPoints returns the points of an oriented box
// nearest to and farthest from p.
func ClosestFarthestOrientedBoxPoints(p, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) (geometry.Vector3, geometry.Vector3) {
	return closestFarthestOrientedBoxPoints(p, center, axes, extents)
}

func closestFarthestOrientedBoxPoints(p, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) (geometry.Vector3, geometry.Vector3) {
	d := p.Sub(center)
	nearest, farthest := center, center
	for i := 0; i < 3; i++ {
		proj := d.Dot(axes[i])
		nearest = nearest.Add(axes[i].Mul(clamp(proj, -extents[i], extents[i])))
		if proj >= 0 {
			farthest = farthest.Sub(axes[i].Mul(extents[i]))
		} else {
			farthest = farthest.Add(axes[i].Mul(extents[i]))
		}
	}
	return nearest, farthest
}

// orientedBoxesGap returns the largest separation of two oriented boxes
// over the face axes of both and the nine edge cross products. A positive
// gap means the boxes are disjoint. Edge pairs within eps of parallel are
// skipped.
func orientedBoxesGap(
	c1 geometry.Vector3, a1 [3]geometry.Vector3, e1 [3]float64,
	c2 geometry.Vector3, a2 [3]geometry.Vector3, e2 [3]float64,
	eps float64,
) float64 {
	d := c2.Sub(c1)
	best := math.Inf(-1)
	test := func(axis geometry.Vector3) {
		gap := math.Abs(d.Dot(axis)) - projectedRadius(axis, a1, e1) - projectedRadius(axis, a2, e2)
		if gap > best {
			best = gap
		}
	}

	for i := 0; i < 3; i++ {
		test(a1[i])
		test(a2[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cross := a1[i].Cross(a2[j])
			length := cross.Length()
			// parallel edges are covered by the face axes
			if length <= eps {
				continue
			}
			test(cross.Mul(1 / length))
		}
	}
	return best
}

// projectedRadius is the half-length of a box's projection onto axis
func projectedRadius(axis geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) float64 {
	return extents[0]*math.Abs(axes[0].Dot(axis)) +
		extents[1]*math.Abs(axes[1].Dot(axis)) +
		extents[2]*math.Abs(axes[2].Dot(axis))
}

func pointInOrientedBox(p, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64, eps float64) bool {
	d := p.Sub(center)
	for i := 0; i < 3; i++ {
		if math.Abs(d.Dot(axes[i])) > extents[i]+eps {
			return false
		}
	}
	return true
}

func cornersInOrientedBox(points [VertexCount]geometry.Vector3, center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64, eps float64) bool {
	for _, p := range points {
		if !pointInOrientedBox(p, center, axes, extents, eps) {
			return false
		}
	}
	return true
}

func boxCenterExtents(l, u geometry.Vector3) (geometry.Vector3, [3]float64) {
	half := u.Sub(l).Mul(0.5)
	return l.Add(half), [3]float64{half.X, half.Y, half.Z}
}

func clampToBox(p, l, u geometry.Vector3) geometry.Vector3 {
	return geometry.NewVector3(
		clamp(p.X, l.X, u.X),
		clamp(p.Y, l.Y, u.Y),
		clamp(p.Z, l.Z, u.Z),
	)
}

// farthestBoxCorner picks, per axis, the bound farther from p
func farthestBoxCorner(p, l, u geometry.Vector3) geometry.Vector3 {
	pick := func(pv, lv, uv float64) float64 {
		if pv-lv >= uv-pv {
			return lv
		}
		return uv
	}
	return geometry.NewVector3(pick(p.X, l.X, u.X), pick(p.Y, l.Y, u.Y), pick(p.Z, l.Z, u.Z))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
