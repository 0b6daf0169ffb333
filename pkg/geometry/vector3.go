package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of coordinate types the geometry package works with
type Float interface {
	constraints.Float
}

// Vec3 represents a 3D point or vector
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vector3 is the double precision vector used by the STL tooling
type Vector3 = Vec3[float64]

// NewVec3 creates a new 3D vector
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// NewVector3 creates a new double precision 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vec3[T]) Mul(scalar T) Vec3[T] {
	return Vec3[T]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Div divides every component by a scalar. No check is made for zero.
func (v Vec3[T]) Div(scalar T) Vec3[T] {
	return Vec3[T]{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}
}

// Neg returns the vector pointing the opposite way
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Distance returns the distance between two points
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return v.Mul(1.0 / length)
}

// Component returns the coordinate along axis d (0=X, 1=Y, 2=Z)
func (v Vec3[T]) Component(d int) T {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3[T]) IsFinite() bool {
	for _, c := range [3]T{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Min returns a vector with the minimum components of two vectors
func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

// ConvertVec3 changes the precision of a vector
func ConvertVec3[U, T Float](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// ConvertVec3s changes the precision of a whole vertex table
func ConvertVec3s[U, T Float](vs []Vec3[T]) []Vec3[U] {
	out := make([]Vec3[U], len(vs))
	for i, v := range vs {
		out[i] = ConvertVec3[U](v)
	}
	return out
}
