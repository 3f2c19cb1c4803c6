package bounds

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// ErrUnknownConstraint is returned when parsing an unsupported plane constraint
var ErrUnknownConstraint = errors.New("unknown plane constraint")

// PlaneConstraint forces an oriented box fit to stay coplanar with a
// coordinate plane.
type PlaneConstraint int

const (
	// ConstraintNone fits all three axes freely
	ConstraintNone PlaneConstraint = iota
	// ConstraintOXY keeps Z as an axis
	ConstraintOXY
	// ConstraintOXZ keeps Y as an axis
	ConstraintOXZ
	// ConstraintOYZ keeps X as an axis
	ConstraintOYZ
)

func (c PlaneConstraint) String() string {
	switch c {
	case ConstraintNone:
		return "none"
	case ConstraintOXY:
		return "xy"
	case ConstraintOXZ:
		return "xz"
	case ConstraintOYZ:
		return "yz"
	}
	return fmt.Sprintf("PlaneConstraint(%d)", int(c))
}

// ParsePlaneConstraint parses "none", "xy", "xz" or "yz"
func ParsePlaneConstraint(name string) (PlaneConstraint, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "o") {
	case "", "none":
		return ConstraintNone, nil
	case "xy":
		return ConstraintOXY, nil
	case "xz":
		return ConstraintOXZ, nil
	case "yz":
		return ConstraintOYZ, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownConstraint)
}

// normal returns the axis the constrained box keeps, with the two in-plane
// coordinate indices.
func (c PlaneConstraint) normal() (geometry.Vector3, int, int) {
	switch c {
	case ConstraintOXZ:
		return geometry.UnitY, 0, 2
	case ConstraintOYZ:
		return geometry.UnitX, 1, 2
	}
	return geometry.UnitZ, 0, 1
}

// OrientedFit is the result of fitting an oriented box to points
type OrientedFit struct {
	Center  geometry.Vector3
	Axes    [3]geometry.Vector3
	Extents [3]float64
}

// ComputeOBBCenterAxisExtents fits an oriented box to points by principal
// component analysis. The covariance eigenvector of largest eigenvalue
// becomes T, the second R and the smallest S, with T = R × S. Each of R
// and S is signed so that its largest component is positive. Extents are
// half the projected spread of the points on each axis and the center is
// rebuilt from the projection midpoints.
func ComputeOBBCenterAxisExtents(points []geometry.Vector3) (OrientedFit, error) {
	axes, err := principalAxes(points)
	if err != nil {
		return OrientedFit{}, err
	}
	return fitAlongAxes(points, axes), nil
}

// ComputeConstrainedOBB fits an oriented box whose third axis is the
// normal of the constraint plane. The in-plane axes come from the
// principal components of the points projected on that plane.
func ComputeConstrainedOBB(constraint PlaneConstraint, points []geometry.Vector3) (OrientedFit, error) {
	if constraint == ConstraintNone {
		return ComputeOBBCenterAxisExtents(points)
	}

	normal, u, v := constraint.normal()
	planar := make([]geometry.Point2, len(points))
	for i, p := range points {
		planar[i] = geometry.Point2{X: p.Component(u), Y: p.Component(v)}
	}

	values, vectors, err := geometry.Eigensolve2x2(geometry.Covariance2(planar))
	if err != nil {
		return OrientedFit{}, err
	}

	r := geometry.Vector3{}.WithComponent(u, 1)
	if math.Abs(values[0]) > 0 {
		r = geometry.Vector3{}.
			WithComponent(u, vectors[0].X).
			WithComponent(v, vectors[0].Y)
		r = canonicalSign(r.Normalize())
	}
	axes := [3]geometry.Vector3{r, normal.Cross(r), normal}
	return fitAlongAxes(points, axes), nil
}

func principalAxes(points []geometry.Vector3) ([3]geometry.Vector3, error) {
	if coincident(points) {
		return geometry.IdentityAxes(), nil
	}
	values, vectors, err := geometry.Eigensolve3x3(geometry.Covariance(points))
	if err != nil {
		return geometry.IdentityAxes(), err
	}
	if values[0] <= 0 {
		return geometry.IdentityAxes(), nil
	}
	return geometry.Orthonormalize(canonicalSign(vectors[1]), canonicalSign(vectors[2])), nil
}

// coincident reports whether points hold at most one distinct location
func coincident(points []geometry.Vector3) bool {
	for _, p := range points {
		if p != points[0] {
			return false
		}
	}
	return true
}

// canonicalSign flips v so that its largest magnitude component is positive
func canonicalSign(v geometry.Vector3) geometry.Vector3 {
	largest := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v.Component(i)) > math.Abs(v.Component(largest)) {
			largest = i
		}
	}
	if v.Component(largest) < 0 {
		return v.Negate()
	}
	return v
}

func fitAlongAxes(points []geometry.Vector3, axes [3]geometry.Vector3) OrientedFit {
	fit := OrientedFit{Axes: axes}
	if len(points) == 0 {
		return fit
	}
	for i, axis := range axes {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range points {
			proj := p.Dot(axis)
			lo = math.Min(lo, proj)
			hi = math.Max(hi, proj)
		}
		fit.Extents[i] = (hi - lo) / 2
		fit.Center = fit.Center.Add(axis.Mul((hi + lo) / 2))
	}
	return fit
}
