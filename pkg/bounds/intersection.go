package bounds

import "fmt"

// IntersectionType is the result of classifying a volume against another.
// The receiver of a Classify call is the reference: INSIDE means the
// argument lies inside the receiver.
type IntersectionType int

// The order matters: And keeps the larger value.
const (
	// Same means both volumes coincide
	Same IntersectionType = iota
	// Enclosing means the argument contains the receiver
	Enclosing
	// Inside means the argument lies within the receiver
	Inside
	// Spanning means the boundaries cross and neither contains the other
	Spanning
	// Outside means the volumes are disjoint
	Outside
)

var intersectionTypeNames = [...]string{
	Same:      "SAME",
	Enclosing: "ENCLOSING",
	Inside:    "INSIDE",
	Spanning:  "SPANNING",
	Outside:   "OUTSIDE",
}

func (it IntersectionType) String() string {
	if it < 0 || int(it) >= len(intersectionTypeNames) {
		return fmt.Sprintf("IntersectionType(%d)", int(it))
	}
	return intersectionTypeNames[it]
}

// Invert swaps the roles of the two volumes
func (it IntersectionType) Invert() IntersectionType {
	switch it {
	case Inside:
		return Enclosing
	case Enclosing:
		return Inside
	}
	return it
}

// Intersects reports whether the classification implies a shared point
func (it IntersectionType) Intersects() bool {
	return it != Outside
}

// And combines two partial classifications that must hold simultaneously,
// such as per-axis results of a box test.
func And(l, r IntersectionType) IntersectionType {
	if l == r {
		return l
	}
	if (l == Inside && r == Enclosing) || (l == Enclosing && r == Inside) {
		return Spanning
	}
	if l > r {
		return l
	}
	return r
}

// Or combines two alternative classifications
func Or(l, r IntersectionType) IntersectionType {
	if l == r {
		return l
	}
	if l == Inside || r == Inside {
		return Inside
	}
	return Spanning
}

// containment turns the two containment tests of a pair into a
// classification: in holds when the argument is within the receiver,
// encloses when the argument contains the receiver.
func containment(in, encloses bool) IntersectionType {
	switch {
	case in && encloses:
		return Same
	case in:
		return Inside
	case encloses:
		return Enclosing
	}
	return Spanning
}

// PlanarClassification locates a volume relative to a plane
type PlanarClassification int

const (
	// InFrontOf means the volume lies on the side the normal points to
	InFrontOf PlanarClassification = iota
	// Behind means the volume lies on the side opposite to the normal
	Behind
	// Coincident means the volume touches or straddles the plane
	Coincident
)

func (pc PlanarClassification) String() string {
	switch pc {
	case InFrontOf:
		return "IN_FRONT_OF"
	case Behind:
		return "BEHIND"
	case Coincident:
		return "COINCIDENT"
	}
	return fmt.Sprintf("PlanarClassification(%d)", int(pc))
}

// Invert gives the classification against the negated plane
func (pc PlanarClassification) Invert() PlanarClassification {
	switch pc {
	case InFrontOf:
		return Behind
	case Behind:
		return InFrontOf
	}
	return pc
}

// IntersectionType maps a planar result onto the volume vocabulary:
// a volume touching the plane spans it, any other volume is outside.
func (pc PlanarClassification) IntersectionType() IntersectionType {
	if pc == Coincident {
		return Spanning
	}
	return Outside
}

// classifyDistance locates a support interval [dist-radius, dist+radius]
// along a plane normal.
func classifyDistance(dist, radius, eps float64) PlanarClassification {
	switch {
	case dist-radius > eps:
		return InFrontOf
	case dist+radius < -eps:
		return Behind
	}
	return Coincident
}
