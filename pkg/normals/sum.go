package normals

import "github.com/philipparndt/gonormals/pkg/geometry"

// Sum3 adds three values so that the two of smallest magnitude are combined
// first and the largest is added last. Ties in magnitude are ordered by value,
// so every permutation of the same operands gives the same bits.
func Sum3[T geometry.Float](a, b, c T) T {
	// order so that |c| <= |b| <= |a|
	if smaller(a, c) {
		a, c = c, a
	}
	if smaller(b, c) {
		b, c = c, b
	}
	if smaller(a, b) {
		a, b = b, a
	}
	return (c + b) + a
}

func smaller[T geometry.Float](x, y T) bool {
	ax, ay := abs(x), abs(y)
	if ax != ay {
		return ax < ay
	}
	return x < y
}

func abs[T geometry.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
