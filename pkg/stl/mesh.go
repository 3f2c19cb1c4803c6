package stl

import (
	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// boxFaces lists the corner indices of the 12 outward facing triangles of
// a box, in the corner order of bounds.VertexCount.
var boxFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3}, // +T
	{5, 4, 7}, {5, 7, 6}, // -T
	{0, 3, 4}, {0, 4, 5}, // +R
	{1, 6, 7}, {1, 7, 2}, // -R
	{0, 5, 6}, {0, 6, 1}, // +S
	{3, 2, 7}, {3, 7, 4}, // -S
}

// BoxMesh triangulates the 8 corners of a volume into a closed box.
// Spheres are meshed as their enclosing cube. An uninitialized volume
// yields an empty model.
func BoxMesh(name string, v bounds.Combinable) *Model {
	model := NewModel(name)
	corners := v.GlobalVertices().Collect()
	if len(corners) != bounds.VertexCount {
		return model
	}
	for _, f := range boxFaces {
		t := geometry.Triangle{V1: corners[f[0]], V2: corners[f[1]], V3: corners[f[2]]}
		t.Normal = t.CalculateNormal()
		model.AddTriangle(t)
	}
	return model
}
