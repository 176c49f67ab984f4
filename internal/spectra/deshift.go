package spectra

import "gonum.org/v1/gonum/floats"

// Deshift converts observed-frame spectra into rest-frame photon-space
// flux. Each object's flux is normalized by its own median, so it sits
// near 1 in erg space, then multiplied by its rest-frame wavelength since
// photon counts at fixed energy flux scale with wavelength. Objects do not
// interact.
func Deshift(flux [][]float64, redshifts, wObs []float64) (flShift, wShift [][]float64) {
	flShift = make([][]float64, len(flux))
	wShift = make([][]float64, len(flux))

	for i := range flux {
		wave := make([]float64, len(wObs))
		copy(wave, wObs)
		floats.Scale(1/(1+redshifts[i]), wave)

		shifted := make([]float64, len(flux[i]))
		copy(shifted, flux[i])
		floats.Scale(1/Median(flux[i]), shifted)
		floats.Mul(shifted, wave)

		flShift[i] = shifted
		wShift[i] = wave
	}

	return flShift, wShift
}
