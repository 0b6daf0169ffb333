package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox[T Float] struct {
	Min Vec3[T]
	Max Vec3[T]
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox[T Float]() BoundingBox[T] {
	inf := T(math.Inf(1))
	return BoundingBox[T]{
		Min: Vec3[T]{X: inf, Y: inf, Z: inf},
		Max: Vec3[T]{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox[T]) Extend(point Vec3[T]) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added yet
func (b BoundingBox[T]) Empty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox[T]) Size() Vec3[T] {
	if b.Empty() {
		return Vec3[T]{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox[T]) Center() Vec3[T] {
	return Vec3[T]{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox[T]) Diagonal() T {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox[T]) Volume() T {
	size := b.Size()
	return size.X * size.Y * size.Z
}
