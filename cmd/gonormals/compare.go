package main

import (
	"fmt"

	"github.com/philipparndt/gonormals/pkg/analysis"
	"github.com/philipparndt/gonormals/pkg/normals"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Compare fast and stable normals",
	Long:  "Compute normals in both modes and report how far they diverge.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addEngineFlags(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loadMesh(filename)
	if err != nil {
		return err
	}
	fast, err := computeNormals(cfg, normals.ModeFast, m)
	if err != nil {
		return err
	}
	stable, err := computeNormals(cfg, normals.ModeStable, m)
	if err != nil {
		return err
	}

	dev, err := analysis.CompareModes(fast, stable)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Fast vs Stable Normals")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Faces: %d\n\n", len(fast))

	fmt.Fprintf(out, "  Compared: %d\n", dev.Compared)
	fmt.Fprintf(out, "  Max deviation: %.9f degrees\n", dev.MaxAngle)
	fmt.Fprintf(out, "  Mean deviation: %.9f degrees\n", dev.MeanAngle)
	if dev.WorstTriangle >= 0 {
		fmt.Fprintf(out, "  Worst face: #%d\n", dev.WorstTriangle)
	}
	fmt.Fprintf(out, "  Degenerate in both: %d\n", dev.BothDegenerate)
	fmt.Fprintf(out, "  Degenerate in stable only: %d\n", dev.FastOnlyValid)
	fmt.Fprintf(out, "  Degenerate in fast only: %d\n", dev.StableOnlyValid)
	return nil
}
