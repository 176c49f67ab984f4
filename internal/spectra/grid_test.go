package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelengthsClosedFormLength(t *testing.T) {
	cases := []struct {
		wavemin, wavemax, dloglam float64
	}{
		{3600, 10000, 1e-4},
		{720, 10000, 1e-4},
		{1000, 2000, 1e-3},
	}

	for _, tc := range cases {
		w := Wavelengths(tc.wavemin, tc.wavemax, tc.dloglam)
		want := int(math.Floor(math.Log10(tc.wavemax/tc.wavemin) / tc.dloglam))
		assert.Len(t, w, want)
	}
}

func TestWavelengthsLogSpacing(t *testing.T) {
	w := Wavelengths(3600, 10000, 1e-4)
	require.NotEmpty(t, w)
	assert.InDelta(t, 3600, w[0], 1e-9)

	ratio := math.Pow(10, 1e-4)
	for i := 0; i+1 < len(w); i++ {
		assert.InEpsilon(t, ratio, w[i+1]/w[i], 1e-12)
	}
}

func TestCommonGridsTruncation(t *testing.T) {
	scale, rest := CommonGrids()

	require.Len(t, rest, FinalBins)
	assert.Greater(t, len(scale), len(rest))

	// The common grid is a centered cut of the scale grid.
	assert.Greater(t, rest[0], scale[0])
	assert.Less(t, rest[len(rest)-1], scale[len(scale)-1])

	// Same log step throughout.
	ratio := math.Pow(10, DLogLam)
	for i := 0; i+1 < len(rest); i += 500 {
		assert.InEpsilon(t, ratio, rest[i+1]/rest[i], 1e-10)
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 7.0, Median([]float64{7}))
	assert.True(t, math.IsNaN(Median(nil)))
}
