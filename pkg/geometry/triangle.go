package geometry

// Triangle represents a triangular facet in 3D space
type Triangle[T Float] struct {
	Normal     Vec3[T]
	V1, V2, V3 Vec3[T]
}

// NewTriangle creates a new triangle
func NewTriangle[T Float](normal, v1, v2, v3 Vec3[T]) Triangle[T] {
	return Triangle[T]{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the winding V1 -> V2 -> V3.
// Degenerate facets yield the zero vector.
func (t Triangle[T]) CalculateNormal() Vec3[T] {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle[T]) Area() T {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle[T]) EdgeLengths() [3]T {
	return [3]T{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle[T]) Perimeter() T {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle[T]) Center() Vec3[T] {
	return Vec3[T]{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3,
	}
}
