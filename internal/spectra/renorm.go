package spectra

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Renormalize rescales a rebinned spectrum so its median matches the
// reference spectrum's median over the wavelength range the object
// actually covers. waves is the object's rest-frame grid before rebinning;
// wScale and ref span the full scale grid. The returned slices are new;
// the inputs are not modified.
func Renormalize(fl, iv, waves, wScale, ref []float64) (flOut, ivOut []float64) {
	normMin := searchGreater(wScale, waves[0])
	normMax := searchGreater(wScale, waves[len(waves)-1])
	if normMax < normMin {
		// Coverage running past the top of the scale grid leaves an empty
		// reference window; the NaN scale is sanitized downstream.
		normMax = normMin
	}
	normVal := Median(ref[normMin:normMax])

	nonzero := make([]float64, 0, len(fl))
	for _, f := range fl {
		if f != 0 {
			nonzero = append(nonzero, f)
		}
	}
	specVal := Median(nonzero)

	scale := normVal / math.Abs(specVal)

	flOut = make([]float64, len(fl))
	copy(flOut, fl)
	floats.Scale(scale, flOut)

	ivOut = make([]float64, len(iv))
	copy(ivOut, iv)
	floats.Scale(1/(scale*scale), ivOut)

	return flOut, ivOut
}
