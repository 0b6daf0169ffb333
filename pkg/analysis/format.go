package analysis

import (
	"fmt"

	"github.com/philipparndt/gonormals/pkg/geometry"
)

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector[T geometry.Float](v geometry.Vec3[T]) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", float64(v.X), float64(v.Y), float64(v.Z))
}
