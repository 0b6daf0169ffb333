package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gonormals/pkg/analysis"
	"github.com/philipparndt/gonormals/pkg/stl"
	"github.com/philipparndt/gonormals/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	normalsCount  int
	normalsOutput string
	normalsASCII  bool
	normalsWatch  bool
)

var normalsCmd = &cobra.Command{
	Use:   "normals [file]",
	Short: "Compute per-face normals of an STL file",
	Long: `Compute one unit normal per triangle and print the first few.
With --output the model is written back with the computed normals.
With --watch the computation reruns whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormals,
}

func init() {
	rootCmd.AddCommand(normalsCmd)
	addEngineFlags(normalsCmd)

	normalsCmd.Flags().IntVarP(&normalsCount, "count", "n", 10, "Number of normals to display")
	normalsCmd.Flags().StringVarP(&normalsOutput, "output", "o", "", "Write the model with computed normals to this STL file")
	normalsCmd.Flags().BoolVar(&normalsASCII, "ascii", false, "Write ASCII instead of binary STL")
	normalsCmd.Flags().BoolVarP(&normalsWatch, "watch", "w", false, "Recompute when the file changes")
}

func runNormals(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if err := computeAndReport(cmd, filename); err != nil {
		return err
	}
	if !normalsWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(300*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{filename}, func(string) {
		if err := computeAndReport(cmd, filename); err != nil {
			logger.Error("Recompute failed", zap.String("file", filename), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching for changes", zap.String("file", filename))
	if err := fw.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func computeAndReport(cmd *cobra.Command, filename string) error {
	m, err := loadMesh(filename)
	if err != nil {
		return err
	}

	mode, err := configuredMode()
	if err != nil {
		return err
	}
	result, err := computeNormals(cfg, mode, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Face Normals (%s)\n", mode)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Faces: %d\n", len(result))
	fmt.Fprintf(out, "Degenerate: %d\n\n", countDegenerate(result))

	count := min(normalsCount, len(result))
	for i := 0; i < count; i++ {
		fmt.Fprintf(out, "Face #%d: %s\n", i, analysis.FormatVector(result[i]))
	}

	if normalsOutput == "" {
		return nil
	}
	if err := m.model.SetNormals(result); err != nil {
		return err
	}
	if err := writeModel(normalsOutput, m.model, normalsASCII); err != nil {
		return err
	}
	logger.Info("Wrote model", zap.String("file", normalsOutput), zap.Bool("ascii", normalsASCII))
	return nil
}

func writeModel(path string, model *stl.Model, ascii bool) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if ascii {
		return stl.WriteASCII(file, model)
	}
	return stl.WriteBinary(file, model)
}
