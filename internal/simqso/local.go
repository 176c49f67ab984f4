package simqso

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/spectraml/qsonoise/internal/spectra"
)

// emissionLine is a Gaussian line component in rest-frame Angstroms, with
// strength relative to the continuum at the pivot wavelength.
type emissionLine struct {
	center   float64
	width    float64
	strength float64
}

// The strong rest-frame UV/optical quasar lines.
var quasarLines = []emissionLine{
	{center: 1215.67, width: 12, strength: 6.0},  // Lya
	{center: 1549.48, width: 14, strength: 2.5},  // CIV
	{center: 1908.73, width: 18, strength: 1.2},  // CIII]
	{center: 2798.75, width: 22, strength: 1.0},  // MgII
	{center: 4862.68, width: 30, strength: 0.8},  // Hbeta
	{center: 5008.24, width: 10, strength: 0.4},  // [OIII]
	{center: 6564.61, width: 35, strength: 1.6},  // Halpha
}

// continuumPivot anchors the power-law continuum at the canonical 1450 A
// continuum window.
const continuumPivot = 1450.0

// Local is an in-process Simulator: a power-law continuum with a seeded
// slope plus Gaussian emission lines at the standard quasar lines. It
// stands in for the external simulator when no service URL is configured;
// the redshift argument is accepted for interface parity but the spectrum
// is produced directly on the supplied rest-frame grid.
type Local struct{}

func (Local) Simulate(wave []float64, z float64, seed uint64) ([]float64, error) {
	if len(wave) == 0 {
		return nil, errors.New("empty wavelength grid")
	}

	src := rand.NewPCG(seed, seed)
	slope := distuv.Normal{Mu: -1.5, Sigma: 0.2, Src: src}.Rand()

	fl := make([]float64, len(wave))
	for i, w := range wave {
		f := math.Pow(w/continuumPivot, slope)
		for _, line := range quasarLines {
			dw := (w - line.center) / line.width
			f += line.strength * math.Exp(-0.5*dw*dw)
		}
		fl[i] = f
	}

	// Normalize to approximately median of 1 in erg space; the
	// renormalizer compares medians directly against this.
	floats.Scale(1/spectra.Median(fl), fl)
	return fl, nil
}
