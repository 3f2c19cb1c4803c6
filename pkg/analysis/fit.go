package analysis

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// ErrNoPoints is returned when fitting an empty point cloud
var ErrNoPoints = errors.New("no points to fit")

// Kinds lists every volume kind in report order
var Kinds = []bounds.Kind{bounds.KindAlignedBox, bounds.KindSphere, bounds.KindOrientedBox}

// FitOptions configures a fit
type FitOptions struct {
	// Constraint keeps an oriented box coplanar with a coordinate plane.
	// Other kinds ignore it.
	Constraint bounds.PlaneConstraint
	Tolerance  bounds.Tolerance
}

// Fit builds a volume of the given kind around points
func Fit(points []geometry.Vector3, kind bounds.Kind, opts FitOptions) (bounds.Volume, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	v, err := bounds.NewVolume(kind, opts.Tolerance)
	if err != nil {
		return nil, err
	}
	if obb, ok := v.(*bounds.OrientedBox); ok {
		obb.SetConstrained(opts.Constraint, points...)
		return obb, nil
	}
	v.SetPoints(points...)
	return v, nil
}

// FitAll fits every kind of Kinds
func FitAll(points []geometry.Vector3, opts FitOptions) ([]bounds.Volume, error) {
	volumes := make([]bounds.Volume, 0, len(Kinds))
	for _, kind := range Kinds {
		v, err := Fit(points, kind, opts)
		if err != nil {
			return nil, fmt.Errorf("fit %v: %w", kind, err)
		}
		volumes = append(volumes, v)
	}
	return volumes, nil
}

// Tightness is the volume of v relative to reference; smaller is tighter.
// A zero reference yields 0.
func Tightness(v bounds.Combinable, reference float64) float64 {
	if reference <= 0 {
		return 0
	}
	return v.Volume() / reference
}
