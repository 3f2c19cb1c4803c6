package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 converts the vector to its mgl64 representation
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec3 converts an mgl64 vector
func FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// AxisAngle is a rotation of Angle radians around Axis
type AxisAngle struct {
	Axis  Vector3
	Angle float64
}

// NewAxisAngle creates an axis-angle rotation
func NewAxisAngle(axis Vector3, angle float64) AxisAngle {
	return AxisAngle{Axis: axis, Angle: angle}
}

// Quat returns the equivalent unit quaternion.
// A zero axis yields the identity rotation.
func (a AxisAngle) Quat() mgl64.Quat {
	axis := a.Axis.Normalize()
	if axis.LengthSquared() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(a.Angle, axis.Vec3())
}

// AxisAngleFromQuat decomposes a quaternion into axis and angle
func AxisAngleFromQuat(q mgl64.Quat) AxisAngle {
	q = q.Normalize()
	angle := 2 * math.Acos(math.Max(-1, math.Min(1, q.W)))
	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-12 {
		return AxisAngle{Axis: UnitX, Angle: 0}
	}
	return AxisAngle{Axis: FromVec3(q.V.Mul(1 / s)), Angle: angle}
}

// Rotate applies the rotation q to v
func Rotate(q mgl64.Quat, v Vector3) Vector3 {
	return FromVec3(q.Normalize().Rotate(v.Vec3()))
}

// RotateAxes applies q to each vector of an axis triad and re-orthonormalizes
// the result so rounding never accumulates across repeated rotations.
func RotateAxes(q mgl64.Quat, axes [3]Vector3) [3]Vector3 {
	q = q.Normalize()
	r := FromVec3(q.Rotate(axes[0].Vec3()))
	s := FromVec3(q.Rotate(axes[1].Vec3()))
	return Orthonormalize(r, s)
}

// Orthonormalize builds a right-handed orthonormal triad from two
// directions: r is kept, s is made orthogonal to r, and t = r × s.
func Orthonormalize(r, s Vector3) [3]Vector3 {
	r = r.Normalize()
	s = s.Sub(r.Mul(r.Dot(s))).Normalize()
	return [3]Vector3{r, s, r.Cross(s)}
}

// TransformPoint applies a homogeneous 4x4 transform to a point
func TransformPoint(m mgl64.Mat4, p Vector3) Vector3 {
	h := m.Mul4x1(p.Vec3().Vec4(1))
	if h[3] != 0 && h[3] != 1 {
		return Vector3{X: h[0] / h[3], Y: h[1] / h[3], Z: h[2] / h[3]}
	}
	return Vector3{X: h[0], Y: h[1], Z: h[2]}
}

// TransformDirection applies the linear part of a 4x4 transform to a vector
func TransformDirection(m mgl64.Mat4, v Vector3) Vector3 {
	return FromVec3(m.Mul4x1(v.Vec3().Vec4(0)).Vec3())
}
