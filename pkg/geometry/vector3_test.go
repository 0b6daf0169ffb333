package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Float32Cross(t *testing.T) {
	v1 := NewVec3[float32](0, 2, 0)
	v2 := NewVec3[float32](0, 0, 3)
	result := v1.Cross(v2)

	expected := NewVec3[float32](6, 0, 0)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	var v Vector3
	if n := v.Normalize(); n != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", n)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, -2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component not detected")
	}
	if NewVec3[float32](0, float32(math.Inf(-1)), 0).IsFinite() {
		t.Error("infinite component not detected")
	}
}

func TestVector3Component(t *testing.T) {
	v := NewVector3(7, 8, 9)
	for d, expected := range []float64{7, 8, 9} {
		if got := v.Component(d); got != expected {
			t.Errorf("Component(%d) failed: expected %v, got %v", d, expected, got)
		}
	}
}

func TestConvertVec3s(t *testing.T) {
	in := []Vector3{NewVector3(1, 2, 3), NewVector3(0.5, -0.25, 4)}
	out := ConvertVec3s[float32](in)

	if len(out) != len(in) {
		t.Fatalf("ConvertVec3s failed: expected %d vectors, got %d", len(in), len(out))
	}
	if out[1] != NewVec3[float32](0.5, -0.25, 4) {
		t.Errorf("ConvertVec3s failed: got %v", out[1])
	}
}
