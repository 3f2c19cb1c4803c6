package bounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePoints() []geometry.Vector3 {
	return []geometry.Vector3{
		geometry.NewVector3(-1, -2, 1),
		geometry.NewVector3(1, 0, 2),
		geometry.NewVector3(2, -1, 3),
		geometry.NewVector3(2, -1, 2),
	}
}

func assertVectorInDelta(t *testing.T, expected, actual geometry.Vector3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func assertOrthonormal(t *testing.T, axes [3]geometry.Vector3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, axes[i].Length(), 1e-9, "axis %d length", i)
		for j := i + 1; j < 3; j++ {
			assert.InDelta(t, 0.0, axes[i].Dot(axes[j]), 1e-9, "axes %d and %d", i, j)
		}
	}
	assert.True(t, axes[0].Cross(axes[1]).ApproxEqual(axes[2], 1e-9), "right handed")
}

func TestOrientedBoxFixture(t *testing.T) {
	points := fixturePoints()
	b := NewOrientedBoxFromPoints(points...)
	require.True(t, b.IsInit())

	axes := b.Axes()
	extents := b.Extents()
	assertVectorInDelta(t, geometry.NewVector3(0.484, -0.975, 1.645), b.Center(), 1e-2, "center")
	assertVectorInDelta(t, geometry.NewVector3(-0.257, 0.941, -0.218), axes[0], 1e-2, "R")
	assertVectorInDelta(t, geometry.NewVector3(-0.489, 0.0675, 0.870), axes[1], 1e-2, "S")
	assertVectorInDelta(t, geometry.NewVector3(0.833, 0.33, 0.443), axes[2], 1e-2, "T")
	assert.InDelta(t, 0.7085, extents[0], 1e-2)
	assert.InDelta(t, 0.4325, extents[1], 1e-2)
	assert.InDelta(t, 1.86, extents[2], 1e-2)
	assertOrthonormal(t, axes)

	for _, p := range points {
		assert.Equal(t, Inside, b.ClassifyPoint(p), "%v", p)
	}
	it := b.GlobalVertices()
	for it.Next() {
		assert.Equal(t, Inside, b.ClassifyPoint(it.Vertex()), "vertex %d", it.Index())
	}
}

func TestComputeOBBCenterAxisExtentsMatchesBox(t *testing.T) {
	fit, err := ComputeOBBCenterAxisExtents(fixturePoints())
	require.NoError(t, err)

	b := NewOrientedBoxFromPoints(fixturePoints()...)
	assert.Equal(t, fit.Center, b.Center())
	assert.Equal(t, fit.Axes, b.Axes())
	assert.Equal(t, fit.Extents, b.Extents())
}

func TestOrientedBoxUninitialized(t *testing.T) {
	b := NewOrientedBoxFromPoints()

	assert.False(t, b.IsInit())
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.VertexCount())
	assert.True(t, math.IsNaN(b.Distance(geometry.Vector3{})))
	assert.Equal(t, Outside, b.ClassifyPoint(geometry.Vector3{}))
	assert.Equal(t, Outside, b.Classify(NewAlignedBox(geometry.Vector3{}, geometry.NewVector3(1, 1, 1))))
	assert.Equal(t, "OrientedBox(empty)", b.String())
}

func TestOrientedBoxStaysOrthonormal(t *testing.T) {
	b := NewOrientedBoxFromPoints(fixturePoints()...)
	assertOrthonormal(t, b.Axes())

	for i := 0; i < 50; i++ {
		b.RotateAxisAngle(geometry.NewAxisAngle(geometry.NewVector3(1, 2, 3), 0.37))
	}
	assertOrthonormal(t, b.Axes())

	b.Rotate(mgl64.AnglesToQuat(0.3, -1.1, 2.0, mgl64.XYZ))
	assertOrthonormal(t, b.Axes())

	b.CombinePoints(geometry.NewVector3(5, 5, 5), geometry.NewVector3(-3, 1, 0))
	assertOrthonormal(t, b.Axes())

	b.CombineBounds(NewSphere(geometry.NewVector3(0, 7, 0), 2))
	assertOrthonormal(t, b.Axes())

	b.SetRotation(geometry.NewAxisAngle(geometry.UnitZ, 1).Quat())
	assertOrthonormal(t, b.Axes())

	skewed := NewOrientedBox(geometry.Vector3{}, [3]geometry.Vector3{
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(0, 0, -5),
	}, [3]float64{1, -2, 3})
	assertOrthonormal(t, skewed.Axes())
	assert.Equal(t, [3]float64{1, 2, 3}, skewed.Extents())
}

func TestOrientedBoxRotateKeepsCenterAndExtents(t *testing.T) {
	b := NewOrientedBoxFromPoints(fixturePoints()...)
	center, extents := b.Center(), b.Extents()

	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitY, 0.8))

	assert.Equal(t, center, b.Center())
	assert.Equal(t, extents, b.Extents())
}

func TestOrientedBoxSetRotation(t *testing.T) {
	b := NewOrientedBox(geometry.NewVector3(1, 2, 3), geometry.IdentityAxes(), [3]float64{1, 2, 3})
	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitX, 1.3))

	b.SetRotation(geometry.NewAxisAngle(geometry.UnitZ, math.Pi/2).Quat())

	axes := b.Axes()
	assertVectorInDelta(t, geometry.UnitY, axes[0], 1e-12)
	assertVectorInDelta(t, geometry.NewVector3(-1, 0, 0), axes[1], 1e-12)
	assertVectorInDelta(t, geometry.UnitZ, axes[2], 1e-12)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), b.Center())
	assertVectorInDelta(t, geometry.NewVector3(2, 1, 3), b.Size().Mul(0.5), 1e-12)
}

func TestOrientedBoxTranslateInverse(t *testing.T) {
	b := NewOrientedBoxFromPoints(fixturePoints()...)
	original := b.Clone()
	v := geometry.NewVector3(3.5, -7, 0.25)

	b.Translate(v)
	assert.True(t, b.Center().ApproxEqual(original.Center().Add(v), 1e-12))
	b.Translate(v.Negate())

	assert.True(t, b.Center().ApproxEqual(original.Center(), 1e-12))
	for i := 0; i < VertexCount; i++ {
		got, err := b.GlobalVertexAt(i)
		require.NoError(t, err)
		want, err := original.GlobalVertexAt(i)
		require.NoError(t, err)
		assert.True(t, got.ApproxEqual(want, 1e-9), "vertex %d", i)
	}

	b.SetTranslation(geometry.Vector3{})
	assert.Equal(t, geometry.Vector3{}, b.Center())
}

func TestOrientedBoxConstrainedFit(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(4, 2, 0),
		geometry.NewVector3(2, 1, 1),
		geometry.NewVector3(1, 3, 0.5),
		geometry.NewVector3(3, -1, 0.2),
	}

	tests := []struct {
		constraint PlaneConstraint
		normal     geometry.Vector3
	}{
		{ConstraintOXY, geometry.UnitZ},
		{ConstraintOXZ, geometry.UnitY},
		{ConstraintOYZ, geometry.UnitX},
	}

	for _, tt := range tests {
		t.Run(tt.constraint.String(), func(t *testing.T) {
			b := &OrientedBox{}
			b.SetConstrained(tt.constraint, points...)

			axes := b.Axes()
			assert.Equal(t, tt.normal, axes[2])
			assert.InDelta(t, 0.0, axes[0].Dot(tt.normal), 1e-12)
			assertOrthonormal(t, axes)
			for _, p := range points {
				assert.Equal(t, Inside, b.ClassifyPoint(p), "%v", p)
			}
		})
	}
}

func TestOrientedBoxSetBounds(t *testing.T) {
	t.Run("copies a single aligned box", func(t *testing.T) {
		box := NewAlignedBox(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 4, 6))
		b := &OrientedBox{}
		b.SetBounds(box)

		assert.Equal(t, box.Center(), b.Center())
		assert.Equal(t, geometry.IdentityAxes(), b.Axes())
		assert.Equal(t, [3]float64{1, 2, 3}, b.Extents())
		assert.Equal(t, Same, b.Classify(box))
	})

	t.Run("copies a single sphere", func(t *testing.T) {
		b := &OrientedBox{}
		b.SetBounds(NewSphere(geometry.NewVector3(1, 1, 1), 2))

		assert.Equal(t, geometry.NewVector3(1, 1, 1), b.Center())
		assert.Equal(t, [3]float64{2, 2, 2}, b.Extents())
	})

	t.Run("fits several volumes", func(t *testing.T) {
		a := NewAlignedBox(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1))
		c := NewAlignedBox(geometry.NewVector3(5, 4, 0), geometry.NewVector3(6, 5, 1))
		b := &OrientedBox{}
		b.SetBounds(a, nil, &Sphere{}, c)

		assert.Contains(t, []IntersectionType{Inside, Same}, b.Classify(a))
		assert.Contains(t, []IntersectionType{Inside, Same}, b.Classify(c))
	})
}

func TestOrientedBoxCombineBounds(t *testing.T) {
	b := NewOrientedBoxFromPoints(fixturePoints()...)
	original := b.Clone()
	far := NewAlignedBox(geometry.NewVector3(4, 4, 4), geometry.NewVector3(5, 6, 5))

	b.CombineBounds(far)

	assert.Contains(t, []IntersectionType{Inside, Same}, b.Classify(far))
	assert.Contains(t, []IntersectionType{Inside, Same}, b.Classify(original))
	for _, p := range fixturePoints() {
		assert.Equal(t, Inside, b.ClassifyPoint(p), "%v", p)
	}

	empty := &OrientedBox{}
	empty.CombineBounds(far)
	assert.Equal(t, far.Center(), empty.Center())
}

func TestClassifyOrientedBoxesSeparatingAxis(t *testing.T) {
	rotated := NewOrientedBox(geometry.Vector3{}, geometry.IdentityAxes(), [3]float64{1, 1, 1})
	rotated.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitZ, math.Pi/4))

	t.Run("aligned bounds overlap but boxes do not", func(t *testing.T) {
		other := NewAlignedBox(geometry.NewVector3(1.1, 1.1, -0.5), geometry.NewVector3(2.1, 2.1, 0.5))
		require.True(t, IntersectsAlignedBoxes(rotated.Lower(), rotated.Upper(), other.Lower(), other.Upper(), DefaultEpsilon))

		assert.Equal(t, Outside, rotated.Classify(other))
		assert.Equal(t, Outside, other.Classify(rotated))
		assert.False(t, rotated.Intersects(other))
	})

	t.Run("overlapping corner", func(t *testing.T) {
		other := NewAlignedBox(geometry.NewVector3(0.7, 0.7, -0.5), geometry.NewVector3(1.7, 1.7, 0.5))

		assert.Equal(t, Spanning, rotated.Classify(other))
		assert.Equal(t, Spanning, other.Classify(rotated))
	})

	t.Run("edge against edge", func(t *testing.T) {
		tilted := NewOrientedBox(geometry.NewVector3(0, 0, 2.5), geometry.IdentityAxes(), [3]float64{1, 1, 1})
		tilted.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitX, math.Pi/4))

		assert.Equal(t, Outside, rotated.Classify(tilted))
		tilted.Translate(geometry.NewVector3(0, 0, -0.5))
		assert.Equal(t, Spanning, rotated.Classify(tilted))
	})

	t.Run("nearly parallel edges", func(t *testing.T) {
		identity := geometry.IdentityAxes()
		twisted := geometry.RotateAxes(mgl64.QuatRotate(1e-9, mgl64.Vec3{0, 0, 1}), identity)
		extents := [3]float64{1, 1, 1}

		for _, eps := range []float64{DefaultEpsilon, 0.5} {
			gap := orientedBoxesGap(geometry.Vector3{}, identity, extents, geometry.NewVector3(3, 0, 0), twisted, extents, eps)
			assert.InDelta(t, 1.0, gap, 1e-6, "eps %v", eps)
		}
	})

	t.Run("same", func(t *testing.T) {
		assert.Equal(t, Same, rotated.Classify(rotated.Clone()))
	})

	t.Run("inner box", func(t *testing.T) {
		inner := rotated.Clone()
		inner.Set(inner.Center(), inner.Axes(), [3]float64{0.5, 0.5, 0.5})

		assert.Equal(t, Inside, rotated.Classify(inner))
		assert.Equal(t, Enclosing, inner.Classify(rotated))
	})
}

func TestOrientedBoxClassifySphere(t *testing.T) {
	b := NewOrientedBox(geometry.Vector3{}, geometry.IdentityAxes(), [3]float64{2, 2, 2})
	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitZ, math.Pi/4))

	assert.Equal(t, Inside, b.ClassifySphere(geometry.Vector3{}, 1))
	assert.Equal(t, Enclosing, b.ClassifySphere(geometry.Vector3{}, 4))
	assert.Equal(t, Spanning, b.ClassifySphere(geometry.NewVector3(2.5, 0, 0), 0.5))
	assert.Equal(t, Outside, b.ClassifySphere(geometry.NewVector3(3.5, 0, 0), 0.5))

	s := NewSphere(geometry.Vector3{}, 1)
	assert.Equal(t, Enclosing, s.Classify(b))
}

func TestOrientedBoxClassifyAgainstPlane(t *testing.T) {
	b := NewOrientedBox(geometry.Vector3{}, geometry.IdentityAxes(), [3]float64{1, 1, 1})
	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitZ, math.Pi/4))

	assert.Equal(t, Coincident, b.ClassifyAgainst(NewPlaneYZ(1.2)))
	assert.Equal(t, Behind, b.ClassifyAgainst(NewPlaneYZ(1.5)))
	assert.Equal(t, InFrontOf, b.ClassifyAgainst(NewPlaneYZ(-1.5)))

	p := NewPlaneYZ(1.5)
	p.Negate()
	assert.Equal(t, InFrontOf, b.ClassifyAgainst(p))
	assert.False(t, b.IntersectsPlane(p))
	assert.True(t, b.IntersectsPlane(NewPlaneYZ(1.2)))
}

func TestOrientedBoxDistances(t *testing.T) {
	b := NewOrientedBox(geometry.NewVector3(1, 0, 0), geometry.IdentityAxes(), [3]float64{1, 2, 3})
	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.UnitZ, 0.4))

	probes := []geometry.Vector3{
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(5, 0, 0),
		geometry.NewVector3(-4, 6, 9),
		geometry.NewVector3(1, 0, -10),
	}
	for _, p := range probes {
		assert.InDelta(t, p.Distance(b.NearestPoint(p)), b.Distance(p), 1e-9, "%v", p)
		assert.InDelta(t, p.Distance(b.FarthestPoint(p)), b.DistanceMax(p), 1e-9, "%v", p)
	}
	assert.Equal(t, 0.0, b.Distance(b.Center()))
	assert.InDelta(t, 7.0, b.Distance(geometry.NewVector3(1, 0, -10)), 1e-12)
}

func TestOrientedBoxVolume(t *testing.T) {
	b := NewOrientedBox(geometry.Vector3{}, geometry.IdentityAxes(), [3]float64{1, 2, 3})
	b.RotateAxisAngle(geometry.NewAxisAngle(geometry.NewVector3(1, 1, 0), 0.9))

	assert.InDelta(t, 48.0, b.Volume(), 1e-12)
	assert.Equal(t, 0.0, (&OrientedBox{}).Volume())
}
