package spectra

import "gonum.org/v1/gonum/mat"

// Result is the assembled common-grid dataset produced by a pipeline run.
// Matrices are wavelength bins by surviving objects; Redshifts is aligned
// with the surviving columns.
type Result struct {
	Flux       *mat.Dense
	Ivar       *mat.Dense
	Wavelength []float64
	Redshifts  []float64
	Skipped    int
}
