package main

import (
	"fmt"

	"github.com/philipparndt/gonormals/pkg/analysis"
	"github.com/philipparndt/gonormals/pkg/normals"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show triangle and vertex counts, dimensions, surface area and the number of zero-area faces.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loadMesh(filename)
	if err != nil {
		return err
	}
	degenerate := countDegenerate(normals.PerFace(m.vertices, m.faces,
		normals.WithParallelThreshold(cfg.ParallelThreshold),
		normals.WithWorkers(cfg.Workers)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if m.model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", m.model.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", m.model.TriangleCount())
	fmt.Fprintf(out, "  Unique vertices: %d\n", len(m.vertices))
	fmt.Fprintf(out, "  Zero-area faces: %d\n", degenerate)
	fmt.Fprintf(out, "  Surface Area: %s\n\n", analysis.FormatMeasurement(m.model.SurfaceArea(), "square units"))

	bbox := m.model.BoundingBox()
	if bbox.Empty() {
		return nil
	}
	size := bbox.Size()
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(bbox.Center()))
	fmt.Fprintf(out, "  Size: %.6f x %.6f x %.6f units\n", size.X, size.Y, size.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", bbox.Diagonal())
	return nil
}
