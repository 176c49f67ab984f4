// Package qsofile reads and writes spectra datasets as JSON tables,
// compressed with zstd when the path carries a .zst suffix.
package qsofile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

func compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// Read loads and validates an input dataset.
func Read(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	if compressed(path) {
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zstd: failed to create reader: %w", err)
		}
		defer r.Close()

		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: failed to decompress dataset: %w", err)
		}
		data = out
	}

	var ds Dataset
	if err := sonic.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}

	if len(ds.Flux) != len(ds.Z) {
		return nil, fmt.Errorf("dataset has %d flux rows but %d redshifts", len(ds.Flux), len(ds.Z))
	}
	for i, row := range ds.Flux {
		if len(row) != len(ds.Wavelength) {
			return nil, fmt.Errorf("flux row %d has %d bins, wavelength grid has %d", i, len(row), len(ds.Wavelength))
		}
	}

	return &ds, nil
}

// Write stores the output dataset, overwriting any existing file at path.
func Write(path string, ds *NoisyDataset) error {
	data, err := sonic.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	if compressed(path) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("zstd: failed to create writer: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("zstd: failed to close writer: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// FromMatrices converts the assembled pipeline matrices into an output
// table. Matrices are bins by objects; rows are copied out so the table
// does not alias the matrix backing store.
func FromMatrices(flux, ivar *mat.Dense, wavelength, z []float64) *NoisyDataset {
	rows, _ := flux.Dims()
	out := &NoisyDataset{
		Flux:       make([][]float64, rows),
		Ivar:       make([][]float64, rows),
		Wavelength: wavelength,
		Z:          z,
	}
	for r := 0; r < rows; r++ {
		out.Flux[r] = mat.Row(nil, r, flux)
		out.Ivar[r] = mat.Row(nil, r, ivar)
	}
	return out
}
