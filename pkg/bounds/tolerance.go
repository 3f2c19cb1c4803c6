package bounds

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the boundary tolerance used when none is configured
const DefaultEpsilon = 1e-7

// DefaultTolerance is the tolerance of zero-value volumes
var DefaultTolerance = Tolerance{Epsilon: DefaultEpsilon}

// Tolerance holds the comparison slack applied to every boundary
// condition: touching, coincident and degenerate volumes.
type Tolerance struct {
	Epsilon float64
}

// NewTolerance validates eps and wraps it. Zero is rejected because the
// zero Tolerance stands for DefaultTolerance.
func NewTolerance(eps float64) (Tolerance, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return Tolerance{}, fmt.Errorf("invalid epsilon %v: must be finite and positive", eps)
	}
	return Tolerance{Epsilon: eps}, nil
}

// orDefault maps the zero value to DefaultTolerance
func (t Tolerance) orDefault() Tolerance {
	if t == (Tolerance{}) {
		return DefaultTolerance
	}
	return t
}

// IsZero reports whether v is within epsilon of zero
func (t Tolerance) IsZero(v float64) bool {
	return math.Abs(v) <= t.Epsilon
}

// Equal reports whether a and b are within epsilon of each other
func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) <= t.Epsilon
}
