package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gonormals/pkg/geometry"
	"github.com/philipparndt/gonormals/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSTL(t *testing.T, model *stl.Model) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.stl")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, stl.WriteBinary(file, model))
	require.NoError(t, file.Close())
	return path
}

func quad(storedUp bool) *stl.Model {
	n := geometry.NewVector3(0, 0, 1)
	if !storedUp {
		n = n.Neg()
	}
	m := stl.NewModel("quad")
	m.AddTriangle(geometry.NewTriangle(n,
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 1, 0)))
	m.AddTriangle(geometry.NewTriangle(n,
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 0), geometry.NewVector3(0, 1, 0)))
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 0), geometry.NewVector3(2, 2, 0)))
	return m
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseFallback(t *testing.T) {
	z, err := parseFallback("0, 0,-1")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, -1}, z)

	_, err = parseFallback("1,2")
	assert.Error(t, err)
	_, err = parseFallback("1,2,z")
	assert.Error(t, err)
}

func TestNormalsCommandWritesModel(t *testing.T) {
	path := writeSTL(t, quad(false))
	outPath := filepath.Join(t.TempDir(), "fixed.stl")

	out, err := execute(t, "normals", path, "--fallback", "0,0,1", "--precision", "32", "-o", outPath, "--ascii", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Faces: 3")
	assert.Contains(t, out, "Face #0: (0.000000, 0.000000, 1.000000)")

	fixed, err := stl.Parse(outPath)
	require.NoError(t, err)
	for _, n := range fixed.StoredNormals() {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), n)
	}
}

func TestCheckCommand(t *testing.T) {
	_, err := execute(t, "check", writeSTL(t, quad(true)), "--log-level", "error")
	assert.NoError(t, err)

	out, err := execute(t, "check", writeSTL(t, quad(false)), "--mode", "stable", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 facets")
	assert.Contains(t, out, "Mismatched: 2 (flipped: 2)")
	assert.Contains(t, out, "Degenerate faces: 1")
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", writeSTL(t, quad(true)), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Compared: 2")
	assert.Contains(t, out, "Degenerate in both: 1")
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", writeSTL(t, quad(true)), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Triangles: 3")
	assert.Contains(t, out, "Unique vertices: 5")
	assert.Contains(t, out, "Zero-area faces: 1")
	assert.True(t, strings.HasPrefix(out, "STL File Information"))
}
