package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteBinary writes m as a binary STL file
func WriteBinary(w io.Writer, m *Model) error {
	if uint64(len(m.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(m.Triangles))
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, recordSize)
	for i, t := range m.Triangles {
		for j, v := range [4][3]float64{
			{t.Normal.X, t.Normal.Y, t.Normal.Z},
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
			{t.V3.X, t.V3.Y, t.V3.Z},
		} {
			for k, c := range v {
				binary.LittleEndian.PutUint32(record[j*12+k*4:], math.Float32bits(float32(c)))
			}
		}
		if _, err := bw.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteASCII writes m as an ASCII STL file
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s %s %s\n", formatFloat(t.Normal.X), formatFloat(t.Normal.Y), formatFloat(t.Normal.Z))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3][3]float64{
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
			{t.V3.X, t.V3.Y, t.V3.Z},
		} {
			fmt.Fprintf(bw, "      vertex %s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'e', -1, 64)
}
