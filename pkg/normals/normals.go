package normals

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gonormals/pkg/geometry"
	"golang.org/x/exp/constraints"
)

// PerFace computes one unit normal per face. Each row of f holds three
// indices into v in winding order. Zero-area faces get the zero
// vector.
func PerFace[T geometry.Float, I constraints.Integer](v []geometry.Vec3[T], f [][3]I, opts ...Option) []geometry.Vec3[T] {
	return PerFaceWithFallback(v, f, geometry.Vec3[T]{}, opts...)
}

// PerFaceWithFallback computes one unit normal per face. Faces whose edge
// cross product has zero length get z, copied verbatim.
func PerFaceWithFallback[T geometry.Float, I constraints.Integer](v []geometry.Vec3[T], f [][3]I, z geometry.Vec3[T], opts ...Option) []geometry.Vec3[T] {
	n := make([]geometry.Vec3[T], len(f))
	forEachRange(len(f), newOptions(opts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			face := f[i]
			n[i] = FaceNormal(v[face[0]], v[face[1]], v[face[2]], z)
		}
	})
	return n
}

// PerFaceStable computes one unit normal per face using the magnitude
// ordered sum of the three corner cross products. Degenerate faces are not
// replaced and come back non-finite.
func PerFaceStable[T geometry.Float, I constraints.Integer](v []geometry.Vec3[T], f [][3]I, opts ...Option) []geometry.Vec3[T] {
	n := make([]geometry.Vec3[T], len(f))
	forEachRange(len(f), newOptions(opts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			face := f[i]
			n[i] = FaceNormalStable(v[face[0]], v[face[1]], v[face[2]])
		}
	})
	return n
}

// Mode selects the normal computation
type Mode int

const (
	// ModeFast uses a single cross product per face and a fallback vector
	ModeFast Mode = iota
	// ModeStable uses the magnitude ordered three-product sum
	ModeStable
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeStable:
		return "stable"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "fast" or "stable" (any case) to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast", "":
		return ModeFast, nil
	case "stable":
		return ModeStable, nil
	default:
		return ModeFast, fmt.Errorf("unknown normal mode %q (want fast or stable)", s)
	}
}

// Compute dispatches to PerFaceWithFallback or PerFaceStable. The fallback
// is ignored in stable mode.
func Compute[T geometry.Float, I constraints.Integer](mode Mode, v []geometry.Vec3[T], f [][3]I, z geometry.Vec3[T], opts ...Option) ([]geometry.Vec3[T], error) {
	switch mode {
	case ModeFast:
		return PerFaceWithFallback(v, f, z, opts...), nil
	case ModeStable:
		return PerFaceStable(v, f, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported normal mode %v", mode)
	}
}
