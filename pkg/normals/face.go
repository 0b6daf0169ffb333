package normals

import (
	"github.com/philipparndt/gonormals/pkg/geometry"
)

// FaceNormal returns the unit normal of the triangle p0 -> p1 -> p2, or z
// when the edge cross product has zero length.
func FaceNormal[T geometry.Float](p0, p1, p2, z geometry.Vec3[T]) geometry.Vec3[T] {
	r := p1.Sub(p0).Cross(p2.Sub(p0))
	length := r.Length()
	if length == 0 {
		return z
	}
	return r.Div(length)
}

// FaceNormalStable returns the unit normal of the triangle p0 -> p1 -> p2
// computed from the cross products rooted at each of the three corners.
// A zero-area triangle yields NaN components.
func FaceNormalStable[T geometry.Float](p0, p1, p2 geometry.Vec3[T]) geometry.Vec3[T] {
	n0 := p1.Sub(p0).Cross(p2.Sub(p0))
	n1 := p2.Sub(p1).Cross(p0.Sub(p1))
	n2 := p0.Sub(p2).Cross(p1.Sub(p2))

	sum := geometry.Vec3[T]{
		X: Sum3(n0.X, n1.X, n2.X),
		Y: Sum3(n0.Y, n1.Y, n2.Y),
		Z: Sum3(n0.Z, n1.Z, n2.Z),
	}
	return sum.Div(sum.Length())
}

// Degenerate reports whether n cannot serve as a face normal: it is the zero
// vector or has a NaN or infinite component.
func Degenerate[T geometry.Float](n geometry.Vec3[T]) bool {
	if !n.IsFinite() {
		return true
	}
	return n.X == 0 && n.Y == 0 && n.Z == 0
}
