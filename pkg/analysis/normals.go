package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gonormals/pkg/geometry"
	"github.com/philipparndt/gonormals/pkg/normals"
)

// NormalMismatch describes a facet whose stored normal disagrees with the
// computed one
type NormalMismatch struct {
	TriangleID int
	Stored     geometry.Vector3
	Computed   geometry.Vector3
	Angle      float64 // degrees
}

// NormalReport summarises how stored facet normals compare with computed ones
type NormalReport struct {
	Checked        int
	Matching       int
	Mismatched     int
	Flipped        int // mismatches pointing into the opposite half space
	Degenerate     int // computed normal unusable
	MissingStored  int // stored normal is the zero vector
	MaxAngle       float64
	Mismatches     []NormalMismatch
	ToleranceAngle float64
}

// OK reports whether every checked facet matched
func (r *NormalReport) OK() bool {
	return r.Mismatched == 0
}

// CompareNormals checks stored normals against computed ones. Facets with a
// degenerate computed normal or a zero stored normal are counted but not
// compared.
func CompareNormals(stored, computed []geometry.Vector3, toleranceDeg float64) (*NormalReport, error) {
	if len(stored) != len(computed) {
		return nil, fmt.Errorf("stored normal count %d does not match computed count %d", len(stored), len(computed))
	}

	report := &NormalReport{ToleranceAngle: toleranceDeg}
	for i := range stored {
		if normals.Degenerate(computed[i]) {
			report.Degenerate++
			continue
		}
		if normals.Degenerate(stored[i]) {
			report.MissingStored++
			continue
		}

		report.Checked++
		angle := AngleBetween(stored[i], computed[i])
		report.MaxAngle = math.Max(report.MaxAngle, angle)
		if angle <= toleranceDeg {
			report.Matching++
			continue
		}

		report.Mismatched++
		if angle > 90 {
			report.Flipped++
		}
		report.Mismatches = append(report.Mismatches, NormalMismatch{
			TriangleID: i,
			Stored:     stored[i],
			Computed:   computed[i],
			Angle:      angle,
		})
	}
	return report, nil
}

// ModeDeviation summarises the difference between fast and stable normals
type ModeDeviation struct {
	Compared        int
	MaxAngle        float64 // degrees
	MeanAngle       float64 // degrees
	WorstTriangle   int     // -1 when nothing was compared
	FastOnlyValid   int     // stable result degenerate, fast result usable
	StableOnlyValid int     // fast result degenerate, stable result usable
	BothDegenerate  int
}

// CompareModes measures the angle between the fast and stable normal of
// every face where both are usable
func CompareModes(fast, stable []geometry.Vector3) (*ModeDeviation, error) {
	if len(fast) != len(stable) {
		return nil, fmt.Errorf("fast normal count %d does not match stable count %d", len(fast), len(stable))
	}

	dev := &ModeDeviation{WorstTriangle: -1}
	total := 0.0
	for i := range fast {
		fastBad, stableBad := normals.Degenerate(fast[i]), normals.Degenerate(stable[i])
		switch {
		case fastBad && stableBad:
			dev.BothDegenerate++
			continue
		case stableBad:
			dev.FastOnlyValid++
			continue
		case fastBad:
			dev.StableOnlyValid++
			continue
		}

		angle := AngleBetween(fast[i], stable[i])
		dev.Compared++
		total += angle
		if dev.WorstTriangle < 0 || angle > dev.MaxAngle {
			dev.MaxAngle = angle
			dev.WorstTriangle = i
		}
	}
	if dev.Compared > 0 {
		dev.MeanAngle = total / float64(dev.Compared)
	}
	return dev, nil
}

// AngleBetween returns the angle between two vectors in degrees.
// Uses atan2 of the cross and dot products, which stays accurate for
// nearly parallel vectors.
func AngleBetween(a, b geometry.Vector3) float64 {
	return math.Atan2(a.Cross(b).Length(), a.Dot(b)) * 180 / math.Pi
}
