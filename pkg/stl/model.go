package stl

import (
	"fmt"

	"github.com/philipparndt/gonormals/pkg/geometry"
)

// Triangle is a facet as stored in an STL file
type Triangle = geometry.Triangle[float64]

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox[float64] {
	bbox := geometry.NewBoundingBox[float64]()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Indexed welds corners with identical coordinates into a shared vertex
// table. Face i of the result is triangle i of the model.
func (m *Model) Indexed() ([]geometry.Vector3, [][3]uint32) {
	lookup := make(map[geometry.Vector3]uint32, len(m.Triangles))
	vertices := make([]geometry.Vector3, 0, len(m.Triangles))
	faces := make([][3]uint32, len(m.Triangles))

	index := func(p geometry.Vector3) uint32 {
		if i, ok := lookup[p]; ok {
			return i
		}
		i := uint32(len(vertices))
		lookup[p] = i
		vertices = append(vertices, p)
		return i
	}

	for i, triangle := range m.Triangles {
		faces[i] = [3]uint32{index(triangle.V1), index(triangle.V2), index(triangle.V3)}
	}
	return vertices, faces
}

// StoredNormals returns the facet normals as read from the file
func (m *Model) StoredNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Triangles))
	for i, triangle := range m.Triangles {
		normals[i] = triangle.Normal
	}
	return normals
}

// SetNormals replaces every facet normal. The slice must hold one normal
// per triangle.
func (m *Model) SetNormals(normals []geometry.Vector3) error {
	if len(normals) != len(m.Triangles) {
		return fmt.Errorf("normal count %d does not match triangle count %d", len(normals), len(m.Triangles))
	}
	for i := range m.Triangles {
		m.Triangles[i].Normal = normals[i]
	}
	return nil
}
