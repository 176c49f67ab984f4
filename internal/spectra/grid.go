package spectra

import "math"

// Wavelengths returns a logarithmic wavelength array from wavemin to
// wavemax with step dloglam in log10 space. The caller must supply
// wavemax > wavemin > 0.
func Wavelengths(wavemin, wavemax, dloglam float64) []float64 {
	n := int(math.Log10(wavemax/wavemin) / dloglam)
	out := make([]float64, n)
	logMin := math.Log10(wavemin)
	for i := range out {
		out[i] = math.Pow(10, logMin+dloglam*float64(i))
	}
	return out
}

// CommonGrids returns the scale grid covering rest-frame wavelengths for
// the whole catalog redshift range, and its centered truncation to
// FinalBins pixels used as the common output grid.
func CommonGrids() (scale, rest []float64) {
	scale = Wavelengths(EbossWaveMin/(1+ZMax), EbossWaveMax/(1+ZMin), DLogLam)
	trunc := (len(scale) - FinalBins) / 2
	rest = scale[trunc : len(scale)-trunc]
	if len(rest) == FinalBins+1 {
		rest = rest[:FinalBins]
	}
	return scale, rest
}

// log10All returns the elementwise log10 of w.
func log10All(w []float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = math.Log10(v)
	}
	return out
}
