package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allIntersectionTypes = []IntersectionType{Same, Enclosing, Inside, Spanning, Outside}

func TestIntersectionTypeInvert(t *testing.T) {
	assert.Equal(t, Enclosing, Inside.Invert())
	assert.Equal(t, Inside, Enclosing.Invert())
	assert.Equal(t, Same, Same.Invert())
	assert.Equal(t, Spanning, Spanning.Invert())
	assert.Equal(t, Outside, Outside.Invert())

	for _, it := range allIntersectionTypes {
		assert.Equal(t, it, it.Invert().Invert(), it.String())
	}
}

func TestIntersectionTypeAnd(t *testing.T) {
	tests := []struct {
		l, r     IntersectionType
		expected IntersectionType
	}{
		{Same, Same, Same},
		{Same, Inside, Inside},
		{Same, Enclosing, Enclosing},
		{Inside, Inside, Inside},
		{Inside, Enclosing, Spanning},
		{Enclosing, Inside, Spanning},
		{Inside, Spanning, Spanning},
		{Enclosing, Outside, Outside},
		{Spanning, Outside, Outside},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, And(tt.l, tt.r), "%v AND %v", tt.l, tt.r)
		assert.Equal(t, tt.expected, And(tt.r, tt.l), "%v AND %v", tt.r, tt.l)
	}
}

func TestIntersectionTypeOr(t *testing.T) {
	tests := []struct {
		l, r     IntersectionType
		expected IntersectionType
	}{
		{Outside, Outside, Outside},
		{Inside, Outside, Inside},
		{Spanning, Inside, Inside},
		{Enclosing, Outside, Spanning},
		{Same, Spanning, Spanning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Or(tt.l, tt.r), "%v OR %v", tt.l, tt.r)
		assert.Equal(t, tt.expected, Or(tt.r, tt.l), "%v OR %v", tt.r, tt.l)
	}
}

func TestIntersectionTypeString(t *testing.T) {
	assert.Equal(t, "INSIDE", Inside.String())
	assert.Equal(t, "SAME", Same.String())
	assert.Equal(t, "IntersectionType(42)", IntersectionType(42).String())
	assert.True(t, Spanning.Intersects())
	assert.False(t, Outside.Intersects())
}

func TestPlanarClassification(t *testing.T) {
	assert.Equal(t, Behind, InFrontOf.Invert())
	assert.Equal(t, InFrontOf, Behind.Invert())
	assert.Equal(t, Coincident, Coincident.Invert())

	assert.Equal(t, Spanning, Coincident.IntersectionType())
	assert.Equal(t, Outside, InFrontOf.IntersectionType())
	assert.Equal(t, Outside, Behind.IntersectionType())
	assert.Equal(t, "COINCIDENT", Coincident.String())
}

func TestClassifyDistance(t *testing.T) {
	assert.Equal(t, InFrontOf, classifyDistance(2, 1, 1e-9))
	assert.Equal(t, Behind, classifyDistance(-2, 1, 1e-9))
	assert.Equal(t, Coincident, classifyDistance(1, 1, 1e-9), "touching")
	assert.Equal(t, Coincident, classifyDistance(0.5, 1, 1e-9))
}
