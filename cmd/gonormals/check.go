package main

import (
	"fmt"

	"github.com/philipparndt/gonormals/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	checkTolerance float64
	checkCount     int
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check the normals stored in an STL file",
	Long: `Compare every stored facet normal with the normal computed from the
triangle's winding. Exits with an error when any facet disagrees by more
than the tolerance angle.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addEngineFlags(checkCmd)

	checkCmd.Flags().Float64VarP(&checkTolerance, "tolerance", "t", 1, "Allowed angle in degrees")
	checkCmd.Flags().IntVarP(&checkCount, "count", "n", 10, "Number of mismatches to display")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if cmd.Flags().Changed("tolerance") {
		cfg.ToleranceDegrees = checkTolerance
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	m, err := loadMesh(filename)
	if err != nil {
		return err
	}
	mode, err := configuredMode()
	if err != nil {
		return err
	}
	computed, err := computeNormals(cfg, mode, m)
	if err != nil {
		return err
	}

	report, err := analysis.CompareNormals(m.model.StoredNormals(), computed, cfg.ToleranceDegrees)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Normal Check")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Tolerance: %.3f degrees\n\n", report.ToleranceAngle)

	fmt.Fprintf(out, "  Checked: %d\n", report.Checked)
	fmt.Fprintf(out, "  Matching: %d\n", report.Matching)
	fmt.Fprintf(out, "  Mismatched: %d (flipped: %d)\n", report.Mismatched, report.Flipped)
	fmt.Fprintf(out, "  Missing stored normal: %d\n", report.MissingStored)
	fmt.Fprintf(out, "  Degenerate faces: %d\n", report.Degenerate)
	fmt.Fprintf(out, "  Max deviation: %.6f degrees\n", report.MaxAngle)

	if len(report.Mismatches) > 0 {
		fmt.Fprintln(out)
	}
	for i, mm := range report.Mismatches {
		if i >= checkCount {
			fmt.Fprintf(out, "... %d more\n", len(report.Mismatches)-checkCount)
			break
		}
		fmt.Fprintf(out, "Triangle #%d: stored %s, computed %s, %.3f degrees\n",
			mm.TriangleID, analysis.FormatVector(mm.Stored), analysis.FormatVector(mm.Computed), mm.Angle)
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d facets have mismatched normals", report.Mismatched, report.Checked)
	}
	return nil
}
