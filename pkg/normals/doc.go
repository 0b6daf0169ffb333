// Package normals computes one unit normal per triangle of an indexed mesh.
//
// Two variants are provided. PerFace and PerFaceWithFallback take the cross
// product of the two edges leaving the first corner and substitute a fallback
// vector for zero-area faces. PerFaceStable derives the same direction from
// the three vertex-rooted cross products, combining them per axis with a
// magnitude-ordered sum; it does not substitute a fallback, so degenerate
// faces come back as non-finite vectors (see Degenerate).
//
// Both variants are pure: inputs are never modified, the returned table is
// freshly allocated and row f always belongs to face f. Large face tables are
// split into disjoint ranges that are processed concurrently; the result is
// bit-identical to a sequential run.
//
// Face indices must address the vertex table. They are not checked.
package normals
