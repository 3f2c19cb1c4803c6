package stl

import (
	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Points returns the distinct triangle vertices in first-seen order.
// Shared corners appear once so fitting is not biased toward dense regions.
func (m *Model) Points() []geometry.Vector3 {
	seen := make(map[geometry.Vector3]struct{}, len(m.Triangles)*3)
	points := make([]geometry.Vector3, 0, len(m.Triangles))
	for _, triangle := range m.Triangles {
		for _, v := range triangle.Vertices() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			points = append(points, v)
		}
	}
	return points
}

// Bounds returns the axis-aligned bounds of the model.
// An empty model yields an uninitialized box.
func (m *Model) Bounds() *bounds.AlignedBox {
	box := &bounds.AlignedBox{}
	for _, triangle := range m.Triangles {
		box.CombinePoints(triangle.V1, triangle.V2, triangle.V3)
	}
	return box
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
