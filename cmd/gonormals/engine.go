package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/philipparndt/gonormals/internal/config"
	"github.com/philipparndt/gonormals/pkg/geometry"
	"github.com/philipparndt/gonormals/pkg/normals"
	"github.com/philipparndt/gonormals/pkg/stl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	modeFlag      string
	fallbackFlag  string
	precisionFlag int
	thresholdFlag int
	workersFlag   int
)

// addEngineFlags registers the flags shared by every command that runs the
// normal computation
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "fast", "Normal computation: fast or stable")
	cmd.Flags().StringVar(&fallbackFlag, "fallback", "0,0,0", "Normal used for zero-area faces in fast mode (x,y,z)")
	cmd.Flags().IntVar(&precisionFlag, "precision", 64, "Coordinate precision in bits: 32 or 64")
	cmd.Flags().IntVar(&thresholdFlag, "threshold", normals.DefaultParallelThreshold, "Face count from which work runs in parallel")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
}

// applyEngineFlags copies explicitly set flags over the loaded config
func applyEngineFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Lookup("mode") == nil {
		return nil
	}

	if flags.Changed("mode") {
		cfg.Mode = strings.ToLower(modeFlag)
	}
	if flags.Changed("fallback") {
		z, err := parseFallback(fallbackFlag)
		if err != nil {
			return err
		}
		cfg.Fallback = z
	}
	if flags.Changed("precision") {
		cfg.Precision = precisionFlag
	}
	if flags.Changed("threshold") {
		cfg.ParallelThreshold = thresholdFlag
	}
	if flags.Changed("workers") {
		cfg.Workers = workersFlag
	}
	return cfg.Validate()
}

func parseFallback(s string) ([3]float64, error) {
	var z [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return z, fmt.Errorf("fallback must be x,y,z, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return z, fmt.Errorf("invalid fallback component %q: %w", p, err)
		}
		z[i] = v
	}
	return z, nil
}

// mesh is an STL model together with its welded vertex and face tables
type mesh struct {
	path     string
	model    *stl.Model
	vertices []geometry.Vector3
	faces    [][3]uint32
}

func loadMesh(path string) (*mesh, error) {
	start := time.Now()
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing STL file: %w", err)
	}

	vertices, faces := model.Indexed()
	logger.Debug("Loaded mesh",
		zap.String("file", path),
		zap.Int("triangles", len(faces)),
		zap.Int("vertices", len(vertices)),
		zap.Duration("elapsed", time.Since(start)))

	return &mesh{path: path, model: model, vertices: vertices, faces: faces}, nil
}

// computeNormals runs the engine in the configured precision. Results are
// always returned in double precision.
func computeNormals(cfg *config.Config, mode normals.Mode, m *mesh) ([]geometry.Vector3, error) {
	opts := []normals.Option{
		normals.WithParallelThreshold(cfg.ParallelThreshold),
		normals.WithWorkers(cfg.Workers),
	}
	z := geometry.NewVector3(cfg.Fallback[0], cfg.Fallback[1], cfg.Fallback[2])

	start := time.Now()
	var (
		result []geometry.Vector3
		err    error
	)
	switch cfg.Precision {
	case 32:
		var n []geometry.Vec3[float32]
		n, err = normals.Compute(mode, geometry.ConvertVec3s[float32](m.vertices), m.faces, geometry.ConvertVec3[float32](z), opts...)
		result = geometry.ConvertVec3s[float64](n)
	default:
		result, err = normals.Compute(mode, m.vertices, m.faces, z, opts...)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Computed face normals",
		zap.String("file", m.path),
		zap.Stringer("mode", mode),
		zap.Int("precision", cfg.Precision),
		zap.Int("faces", len(result)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func configuredMode() (normals.Mode, error) {
	return normals.ParseMode(cfg.Mode)
}

func countDegenerate(n []geometry.Vector3) int {
	count := 0
	for _, v := range n {
		if normals.Degenerate(v) {
			count++
		}
	}
	return count
}
