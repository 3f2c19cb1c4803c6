package bounds

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// VertexCount is the number of corners of every volume
const VertexCount = 8

// cornerSigns fixes the corner enumeration order shared by every volume,
// for indexed and iterated access alike:
//
//	0 (+,+,+)  1 (-,+,+)  2 (-,-,+)  3 (+,-,+)
//	4 (+,-,-)  5 (+,+,-)  6 (-,+,-)  7 (-,-,-)
//
// Signs apply to the half-extents along the volume axes.
var cornerSigns = [VertexCount][3]float64{
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, -1},
}

// localCorner returns corner i of a box spanned by axes and half-extents,
// relative to its center.
func localCorner(i int, axes [3]geometry.Vector3, extents [3]float64) (geometry.Vector3, error) {
	if err := checkIndex(i, VertexCount); err != nil {
		return geometry.Vector3{}, err
	}
	s := cornerSigns[i]
	return axes[0].Mul(s[0] * extents[0]).
		Add(axes[1].Mul(s[1] * extents[1])).
		Add(axes[2].Mul(s[2] * extents[2])), nil
}

func checkIndex(i, count int) error {
	if i < 0 || i >= count {
		return fmt.Errorf("index %d not in [0,%d): %w", i, count, ErrIndexOutOfRange)
	}
	return nil
}

// corners returns the 8 global corners of a box
func corners(center geometry.Vector3, axes [3]geometry.Vector3, extents [3]float64) [VertexCount]geometry.Vector3 {
	var out [VertexCount]geometry.Vector3
	for i := range out {
		local, _ := localCorner(i, axes, extents)
		out[i] = center.Add(local)
	}
	return out
}

// VertexIterator walks the corners of a volume once, in the fixed corner
// order. It is not restartable; ask the volume for a fresh one instead.
type VertexIterator struct {
	vertices [VertexCount]geometry.Vector3
	count    int
	index    int
}

func newVertexIterator(vertices [VertexCount]geometry.Vector3, count int) *VertexIterator {
	return &VertexIterator{vertices: vertices, count: count, index: -1}
}

// Size returns the total number of vertices the iterator produces
func (it *VertexIterator) Size() int {
	return it.count
}

// Next advances to the next vertex. It returns false once exhausted.
func (it *VertexIterator) Next() bool {
	if it.index+1 >= it.count {
		it.index = it.count
		return false
	}
	it.index++
	return true
}

// Vertex returns the vertex at the current position
func (it *VertexIterator) Vertex() geometry.Vector3 {
	if it.index < 0 || it.index >= it.count {
		return geometry.Vector3{}
	}
	return it.vertices[it.index]
}

// Index returns the current position, -1 before the first Next call
func (it *VertexIterator) Index() int {
	if it.index >= it.count {
		return it.count - 1
	}
	return it.index
}

// Collect drains the remaining vertices into a slice
func (it *VertexIterator) Collect() []geometry.Vector3 {
	out := make([]geometry.Vector3, 0, it.count)
	for it.Next() {
		out = append(out, it.Vertex())
	}
	return out
}
