package bounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneFromPoints(t *testing.T) {
	p, err := NewPlaneFromPoints(
		geometry.NewVector3(0, 0, 2),
		geometry.NewVector3(1, 0, 2),
		geometry.NewVector3(0, 1, 2),
	)
	require.NoError(t, err)

	assert.True(t, p.Normal().ApproxEqual(geometry.UnitZ, 1e-12))
	assert.InDelta(t, -2.0, p.Offset(), 1e-12)
	assert.InDelta(t, 3.0, p.Distance(geometry.NewVector3(7, -3, 5)), 1e-12)
	assert.InDelta(t, -1.0, p.Distance(geometry.NewVector3(0, 0, 1)), 1e-12)
}

func TestNewPlaneDegenerate(t *testing.T) {
	_, err := NewPlaneFromPoints(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(2, 2, 2),
	)
	assert.ErrorIs(t, err, ErrDegeneratePlane)

	_, err = NewPlaneFromNormal(geometry.Vector3{}, geometry.UnitX)
	assert.ErrorIs(t, err, ErrDegeneratePlane)

	_, err = NewPlane4(0, 0, 0, 1)
	assert.ErrorIs(t, err, ErrDegeneratePlane)
}

func TestNewPlane4Normalizes(t *testing.T) {
	p, err := NewPlane4(0, 3, 4, 10)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, p.Normal().Length(), 1e-12)
	assert.InDelta(t, 2.0, p.Offset(), 1e-12)
}

func TestPlaneNegate(t *testing.T) {
	p, err := NewPlaneFromNormal(geometry.NewVector3(1, 1, 0), geometry.NewVector3(1, 0, 0))
	require.NoError(t, err)
	point := geometry.NewVector3(3, 2, 1)
	before := p.Distance(point)

	q := p.Clone()
	q.Negate()

	assert.InDelta(t, -before, q.Distance(point), 1e-12)
	assert.InDelta(t, before, p.Distance(point), 1e-12, "clone must not alias")
	assert.InDelta(t, 0.0, q.Distance(geometry.NewVector3(1, 0, 0)), 1e-12, "plane does not move")
}

func TestAxisPlanesMatchGeneralForm(t *testing.T) {
	tests := []struct {
		name   string
		plane  Plane
		normal geometry.Vector3
		point  geometry.Vector3
	}{
		{"YZ", NewPlaneYZ(2), geometry.UnitX, geometry.NewVector3(2, 0, 0)},
		{"XZ", NewPlaneXZ(-1), geometry.UnitY, geometry.NewVector3(0, -1, 0)},
		{"XY", NewPlaneXY(0.5), geometry.UnitZ, geometry.NewVector3(0, 0, 0.5)},
	}

	probes := []geometry.Vector3{
		geometry.NewVector3(3, 4, 5),
		geometry.NewVector3(-3, -4, -5),
		geometry.NewVector3(2, -1, 0.5),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			general, err := NewPlaneFromNormal(tt.normal, tt.point)
			require.NoError(t, err)

			assert.Equal(t, tt.normal, tt.plane.Normal())
			assert.InDelta(t, general.Offset(), tt.plane.Offset(), 1e-12)
			for _, p := range probes {
				assert.InDelta(t, general.Distance(p), tt.plane.Distance(p), 1e-12)
			}

			negated := tt.plane.Clone()
			negated.Negate()
			general.Negate()
			assert.Equal(t, tt.normal.Negate(), negated.Normal())
			for _, p := range probes {
				assert.InDelta(t, general.Distance(p), negated.Distance(p), 1e-12)
			}
		})
	}
}

func TestAxisPlaneCoordinate(t *testing.T) {
	p := NewPlaneXY(1)
	assert.True(t, p.IsPositive())
	p.SetCoordinate(3)
	assert.Equal(t, 3.0, p.Coordinate())
	assert.InDelta(t, -3.0, p.Distance(geometry.Vector3{}), 1e-12)
	p.Negate()
	assert.False(t, p.IsPositive())
	assert.InDelta(t, 3.0, p.Distance(geometry.Vector3{}), 1e-12)
}

func TestClassifyPointPlane(t *testing.T) {
	p := NewPlaneXY(0)
	assert.Equal(t, InFrontOf, ClassifyPointPlane(geometry.NewVector3(0, 0, 1), p, 1e-9))
	assert.Equal(t, Behind, ClassifyPointPlane(geometry.NewVector3(0, 0, -1), p, 1e-9))
	assert.Equal(t, Coincident, ClassifyPointPlane(geometry.NewVector3(5, 5, 0), p, 1e-9))
}

func TestPlane4Transform(t *testing.T) {
	p, err := NewPlaneFromNormal(geometry.UnitZ, geometry.Vector3{})
	require.NoError(t, err)

	// rotate Z onto -Y, then lift by 3 along Y
	m := mgl64.Translate3D(0, 3, 0).Mul4(mgl64.HomogRotate3DX(math.Pi / 2))
	require.NoError(t, p.Transform(m))

	assert.True(t, p.Normal().ApproxEqual(geometry.NewVector3(0, -1, 0), 1e-12), "got %v", p.Normal())
	assert.InDelta(t, 0.0, p.Distance(geometry.NewVector3(5, 3, -2)), 1e-12)

	assert.ErrorIs(t, p.Transform(mgl64.Mat4{}), ErrDegeneratePlane)
}
