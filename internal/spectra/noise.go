package spectra

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseModel draws photon-counting and SNR-targeted Gaussian noise from a
// single seeded source. The same seed and object order reproduce the same
// dataset bit for bit.
type NoiseModel struct {
	src rand.Source
}

func NewNoiseModel(seed uint64) *NoiseModel {
	return &NoiseModel{src: rand.NewPCG(seed, seed)}
}

// Apply converts one deshifted photon-space spectrum into noisy erg-space
// flux and its inverse variance. Per bin, a Poisson sample at the
// non-negative photon rate is divided back by the rest-frame wavelength;
// its quotient doubles as the Poisson variance estimate. A Gaussian term
// with sigma chosen from a random SNR target in [SNRMin, SNRMax] is added
// on top. With addNoise false the flux is the deterministic
// wavelength-corrected value, the inverse variance is a 0/1 indicator of
// nonzero flux, and no random draws happen at all.
func (m *NoiseModel) Apply(flShift, wShift []float64, addNoise bool) (fl, iv []float64) {
	n := len(flShift)
	fl = make([]float64, n)
	iv = make([]float64, n)

	if !addNoise {
		for j := range flShift {
			fl[j] = flShift[j] / wShift[j]
			if fl[j] != 0 {
				iv[j] = 1
			}
		}
		return fl, iv
	}

	pois := distuv.Poisson{Src: m.src}
	for j := range flShift {
		lambda := math.Max(flShift[j], 0)
		var x float64
		if lambda > 0 {
			pois.Lambda = lambda
			x = pois.Rand()
		}
		fl[j] = x / wShift[j]
	}

	var signal float64
	for _, v := range fl {
		signal += v * v
	}
	signal /= float64(n)

	snr := distuv.Uniform{Min: SNRMin, Max: SNRMax, Src: m.src}.Rand()
	sigma := math.Sqrt(signal) / snr
	normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: m.src}

	for j := range fl {
		// Poisson variance first; fl[j] still holds the scaled count.
		variance := fl[j] + sigma*sigma
		if variance != 0 {
			iv[j] = 1 / variance
		}
		fl[j] += normal.Rand()
	}

	return fl, iv
}
