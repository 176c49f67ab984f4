package spectra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeshiftRestFrameGrid(t *testing.T) {
	wObs := []float64{4000, 4000.9, 4001.8}
	flux := [][]float64{{2, 4, 6}}

	flShift, wShift := Deshift(flux, []float64{1.0}, wObs)
	require.Len(t, wShift, 1)

	for i, w := range wObs {
		assert.InDelta(t, w/2, wShift[0][i], 1e-12)
	}

	// Median-normalized erg flux times the rest wavelength.
	for i := range wObs {
		assert.InDelta(t, flux[0][i]/4.0*wShift[0][i], flShift[0][i], 1e-12)
	}
}

func TestDeshiftObjectsIndependent(t *testing.T) {
	wObs := []float64{5000, 5001}
	flux := [][]float64{{1, 3}, {10, 30}}

	flShift, _ := Deshift(flux, []float64{0.0, 2.0}, wObs)

	// The second object's tenfold flux normalizes away; only the redshift
	// differs between the two rows.
	assert.InDelta(t, flShift[0][0], flShift[1][0]*3, 1e-12)

	// Inputs are untouched.
	assert.Equal(t, []float64{1, 3}, flux[0])
	assert.Equal(t, []float64{5000.0, 5001.0}, wObs)
}
