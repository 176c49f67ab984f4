package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// batchFixture builds a two-object batch over the full scale grid: object
// A sits barely off the grid phase at z close to zero and covers the whole
// common grid, object B is pushed far enough in redshift that its rest
// frame misses the common grid entirely.
func batchFixture() (flux [][]float64, wObs, redshifts []float64) {
	wObs, _ = CommonGrids()
	flux = [][]float64{
		constSlice(1.0, len(wObs)),
		constSlice(1.0, len(wObs)),
	}
	redshifts = []float64{0.0001, 15.0}
	return flux, wObs, redshifts
}

func TestPipelineSkipsObjectsWithoutCoverage(t *testing.T) {
	flux, wObs, redshifts := batchFixture()

	result, err := NewPipeline().Run(flux, wObs, redshifts, nil)
	require.NoError(t, err)

	rows, cols := result.Flux.Dims()
	assert.Equal(t, FinalBins, rows)
	assert.Equal(t, 1, cols, "object B must be excluded")
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []float64{0.0001}, result.Redshifts)
	assert.Len(t, result.Wavelength, FinalBins)
}

func TestPipelineNoNoiseIsUnitFluxWithMaskIvar(t *testing.T) {
	flux, wObs, redshifts := batchFixture()

	result, err := NewPipeline().Run(flux, wObs, redshifts, nil)
	require.NoError(t, err)

	// Flat unit flux survives deshift (median 1), the photon-space round
	// trip, and the flux-conserving rebinning.
	for _, r := range []int{0, 1, FinalBins / 2, FinalBins - 2, FinalBins - 1} {
		assert.InDelta(t, 1.0, result.Flux.At(r, 0), 1e-6, "row %d", r)
	}

	// Without noise the inverse variance column is the coverage mask.
	for _, r := range []int{0, FinalBins / 2, FinalBins - 1} {
		assert.Equal(t, 1.0, result.Ivar.At(r, 0), "row %d", r)
	}
}

func TestPipelineReproducibleForSeed(t *testing.T) {
	flux, wObs, redshifts := batchFixture()

	run := func() *Result {
		result, err := NewPipeline(WithSeed(321), WithNoise(true)).Run(flux, wObs, redshifts, nil)
		require.NoError(t, err)
		return result
	}

	a := run()
	b := run()
	assert.True(t, mat.Equal(a.Flux, b.Flux), "same seed must give identical flux")
	assert.True(t, mat.Equal(a.Ivar, b.Ivar), "same seed must give identical ivar")

	c, err := NewPipeline(WithSeed(322), WithNoise(true)).Run(flux, wObs, redshifts, nil)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a.Flux, c.Flux), "different seed must change the draws")
}

func TestPipelineRenormAgainstFlatReference(t *testing.T) {
	flux, wObs, redshifts := batchFixture()
	wScale, _ := CommonGrids()
	ref := constSlice(1.0, len(wScale))

	result, err := NewPipeline(WithRenorm(true)).Run(flux, wObs, redshifts, nil)
	assert.Error(t, err, "renorm without a reference must fail")
	assert.Nil(t, result)

	result, err = NewPipeline(WithRenorm(true)).Run(flux, wObs, redshifts, ref)
	require.NoError(t, err)

	// Unit spectrum against a unit reference: the scale is 1 and the
	// flux is unchanged.
	assert.InDelta(t, 1.0, result.Flux.At(FinalBins/2, 0), 1e-6)
}

func TestPipelineValidatesInput(t *testing.T) {
	_, err := NewPipeline().Run(nil, nil, nil, nil)
	assert.Error(t, err)

	flux, wObs, _ := batchFixture()
	_, err = NewPipeline().Run(flux, wObs, []float64{0.1}, nil)
	assert.Error(t, err)
}

func TestPipelineAllObjectsOutsideGridFails(t *testing.T) {
	wObs, _ := CommonGrids()
	flux := [][]float64{constSlice(1.0, len(wObs))}

	_, err := NewPipeline().Run(flux, wObs, []float64{50.0}, nil)
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, sanitize(math.NaN()))
	assert.Equal(t, 0.0, sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, sanitize(math.Inf(-1)))
	assert.Equal(t, -3.5, sanitize(-3.5))
}
