package spectra

import (
	"math"
	"sort"
)

// Median returns the midpoint of the two central order statistics for
// even-length input, the same convention the rest of the toolchain uses.
// The input is not modified. An empty input yields NaN.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return 0.5 * (s[mid-1] + s[mid])
}
