package normals

import (
	"math"
	"testing"

	"github.com/philipparndt/gonormals/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestSum3SmallestFirst(t *testing.T) {
	// left to right loses both small terms, smallest-first keeps them
	one, small := 1.0, 1e-16
	naive := (one + small) + small
	assert.Equal(t, 1.0, naive)
	assert.Equal(t, math.Nextafter(1, 2), Sum3(one, small, small))
	assert.Equal(t, math.Nextafter(1, 2), Sum3(small, one, small))
}

func TestSum3PermutationInvariant(t *testing.T) {
	cases := [][3]float64{
		{3, -1, 2},
		{1e20, -1e20, 3.5},
		{-0.1, 0.1, 0.3},
		{0, -0, 1e-300},
		{7, 7, -7},
	}
	for _, c := range cases {
		a, b, d := c[0], c[1], c[2]
		want := Sum3(a, b, d)
		for _, p := range [][3]float64{{a, d, b}, {b, a, d}, {b, d, a}, {d, a, b}, {d, b, a}} {
			got := Sum3(p[0], p[1], p[2])
			assert.Equal(t, math.Float64bits(want), math.Float64bits(got), "operands %v", p)
		}
	}
	assert.Equal(t, 4.0, Sum3(3.0, -1, 2))
}

func TestSum3Float32(t *testing.T) {
	assert.Equal(t, float32(6), Sum3[float32](1, 2, 3))
}

func TestDegenerate(t *testing.T) {
	assert.True(t, Degenerate(geometry.Vector3{}))
	assert.True(t, Degenerate(geometry.NewVector3(math.NaN(), 0, 0)))
	assert.False(t, Degenerate(geometry.NewVector3(0, 0, 1)))
}
