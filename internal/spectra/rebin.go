package spectra

import "math"

// searchGreater returns the index of the first element of w strictly
// greater than v, or 0 when no element qualifies.
func searchGreater(w []float64, v float64) int {
	for i, x := range w {
		if x > v {
			return i
		}
	}
	return 0
}

// RebinToCommon resamples one rest-frame spectrum onto the common grid.
// Both grids are in log10 wavelength and share the step dl, so every input
// sample straddles at most two adjacent output bins and the overlap
// fractions are a single phase offset constant across the whole spectrum.
// Flux splits additively between the low and high bin; variance
// accumulates with squared fractions and is inverted back to inverse
// variance only above VarianceFloor. Bins that received no flux, and
// covered bins bordering them, are masked out.
//
// A nil triple means the object has no usable coverage on the common
// grid. That is a valid result, not an error.
func RebinToCommon(wIn, wOut, fl, iv []float64) (flOut, ivOut, mask []float64) {
	if len(wIn) < 1 {
		return nil, nil, nil
	}

	lMin := wOut[0]
	lMax := wOut[len(wOut)-1]
	dl := wOut[1] - wOut[0]
	nbins := len(wOut)

	// Offset between a representative interior sample and the output bin
	// edge directly above it.
	idxIn := searchGreater(wIn, lMin)
	if idxIn+1 >= len(wIn) {
		return nil, nil, nil
	}
	idxOut := searchGreater(wOut, wIn[idxIn])
	dLow := wOut[idxOut] - wIn[idxIn]
	dHigh := wIn[idxIn+1] - wOut[idxOut]

	// Output bin holding the lower edge of each input sample. The upper
	// edge lands exactly one bin higher since the grids share a step.
	binLow := make([]int, len(wIn))
	minLow, maxHigh := nbins, -1
	for i, w := range wIn {
		b := int(math.Floor((w - lMin) / dl))
		binLow[i] = b
		if b >= 0 && b < nbins && b < minLow {
			minLow = b
		}
		if b+1 >= 0 && b+1 < nbins && b+1 > maxHigh {
			maxHigh = b + 1
		}
	}

	// Not enough of this grid actually falls into the common grid.
	if minLow == nbins || maxHigh == -1 {
		return nil, nil, nil
	}

	switch {
	case minLow == 0:
		// The input reaches the bottom of the common grid, where the
		// generic first-sample-above search lands on the wrong side. Redo
		// the offset anchored at the bottom grid edge; the search is
		// shifted by one so the anchor sample sits below the boundary.
		base := wOut[0]
		idxIn = searchGreater(wIn[1:], lMin)
		if wIn[idxIn] > base {
			// The whole input starts above the bottom edge, so there is
			// no sample below it to anchor on. Move the base up to the
			// edge directly above the anchor instead.
			idxOut = searchGreater(wOut, wIn[idxIn])
			base = wOut[idxOut]
		}
		if idxIn+1 >= len(wIn) {
			return nil, nil, nil
		}
		dLow = base - wIn[idxIn]
		dHigh = wIn[idxIn+1] - base
	case maxHigh == nbins-1 && wIn[len(wIn)-1] > lMax:
		// The input spills past the top of the common grid; anchor at the
		// last output bin, between the samples straddling it.
		idxIn = searchGreater(wIn, lMax) - 1
		if idxIn < 0 {
			return nil, nil, nil
		}
		dLow = lMax - wIn[idxIn]
		dHigh = wIn[idxIn+1] - lMax
	}

	percentLow := dLow / dl
	percentHigh := dHigh / dl

	// Invert nonzero inverse variance; zero stays "no information".
	variance := make([]float64, len(iv))
	for i, v := range iv {
		if v != 0 {
			variance[i] = 1 / v
		}
	}

	flOut = make([]float64, nbins)
	varOut := make([]float64, nbins)
	for i, b := range binLow {
		if b >= 0 && b < nbins {
			flOut[b] += fl[i] * percentLow
			varOut[b] += variance[i] * percentLow * percentLow
		}
		if b+1 >= 0 && b+1 < nbins {
			flOut[b+1] += fl[i] * percentHigh
			varOut[b+1] += variance[i] * percentHigh * percentHigh
		}
	}

	mask = make([]float64, nbins)
	for i, f := range flOut {
		if f != 0 {
			mask[i] = 1
		}
	}
	mask = erode(mask)

	ivOut = make([]float64, nbins)
	for i, v := range varOut {
		ivOut[i] = v
		if math.Abs(v) > VarianceFloor {
			ivOut[i] = 1 / v
		}
		ivOut[i] *= mask[i]
	}

	return flOut, ivOut, mask
}

// erode clears every covered bin directly adjacent to an uncovered one,
// removing the partial-bin artifacts at coverage boundaries. Bins beyond
// the array edges count as covered.
func erode(mask []float64) []float64 {
	out := make([]float64, len(mask))
	for i := range mask {
		left, right := 1.0, 1.0
		if i > 0 {
			left = mask[i-1]
		}
		if i < len(mask)-1 {
			right = mask[i+1]
		}
		if mask[i] != 0 && left != 0 && right != 0 {
			out[i] = 1
		}
	}
	return out
}
