// Package spectra implements the noisy rebinned quasar dataset pipeline:
// deshift to rest frame, photon-noise injection, flux-conserving rebinning
// onto a common logarithmic grid, and renormalization against a reference
// quasar spectrum.
package spectra

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

type Pipeline struct {
	Seed     uint64
	AddNoise bool
	Renorm   bool
}

type PipelineOption func(*Pipeline)

func WithSeed(seed uint64) PipelineOption {
	return func(p *Pipeline) {
		p.Seed = seed
	}
}

func WithNoise(enabled bool) PipelineOption {
	return func(p *Pipeline) {
		p.AddNoise = enabled
	}
}

func WithRenorm(enabled bool) PipelineOption {
	return func(p *Pipeline) {
		p.Renorm = enabled
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{Seed: DefaultSeed}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run processes the whole batch sequentially: deshift, noise, rebin,
// renormalize, then stack the survivors into bins-by-objects matrices.
// flux is objects by observed bins over the shared grid wObs; ref is the
// reference spectrum over the scale grid and may be nil when
// renormalization is disabled. Objects without coverage on the common grid
// are skipped. NaN and infinite entries in the final matrices are replaced
// with zero.
func (p *Pipeline) Run(flux [][]float64, wObs, redshifts, ref []float64) (*Result, error) {
	if len(flux) == 0 {
		return nil, errors.New("empty input batch")
	}
	if len(flux) != len(redshifts) {
		return nil, errors.New("flux and redshift counts differ")
	}
	if p.Renorm && ref == nil {
		return nil, errors.New("renormalization requested without a reference spectrum")
	}

	wScale, wRest := CommonGrids()
	logRest := log10All(wRest)

	log.Info().Int("objects", len(flux)).Msg("Deshifting spectra")
	flShift, wShift := Deshift(flux, redshifts, wObs)

	log.Info().Bool("add_noise", p.AddNoise).Msg("Adding noise")
	model := NewNoiseModel(p.Seed)

	var (
		flCols  [][]float64
		ivCols  [][]float64
		zKept   []float64
		skipped int
	)

	log.Info().Int("bins", len(wRest)).Msg("Rebinning spectra")
	for i := range flShift {
		flNoisy, ivNoisy := model.Apply(flShift[i], wShift[i], p.AddNoise)

		flReb, ivReb, m := RebinToCommon(log10All(wShift[i]), logRest, flNoisy, ivNoisy)
		if flReb == nil {
			skipped++
			log.Debug().Int("object", i).Msg("No coverage on common grid, skipping")
			continue
		}

		if p.Renorm {
			flReb, ivReb = Renormalize(flReb, ivReb, wShift[i], wScale, ref)
		}
		if !p.AddNoise {
			ivReb = make([]float64, len(m))
			copy(ivReb, m)
		}

		flCols = append(flCols, flReb)
		ivCols = append(ivCols, ivReb)
		zKept = append(zKept, redshifts[i])
	}

	if len(flCols) == 0 {
		return nil, errors.New("no objects overlap the common grid")
	}

	nbins := len(wRest)
	X := mat.NewDense(nbins, len(flCols), nil)
	V := mat.NewDense(nbins, len(ivCols), nil)
	for c := range flCols {
		for r := 0; r < nbins; r++ {
			X.Set(r, c, sanitize(flCols[c][r]))
			V.Set(r, c, sanitize(ivCols[c][r]))
		}
	}

	logDiagnostics(X, V, skipped)

	return &Result{
		Flux:       X,
		Ivar:       V,
		Wavelength: wRest,
		Redshifts:  zKept,
		Skipped:    skipped,
	}, nil
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// logDiagnostics reports the fraction of negative flux among informative
// bins and the fraction of bins with no information at all.
func logDiagnostics(X, V *mat.Dense, skipped int) {
	rows, cols := X.Dims()
	var negative, informative int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if X.At(r, c) < 0 {
				negative++
			}
			if V.At(r, c) != 0 {
				informative++
			}
		}
	}

	total := rows * cols
	negFrac := 0.0
	if informative > 0 {
		negFrac = float64(negative) / float64(informative)
	}

	log.Info().
		Int("skipped", skipped).
		Int("kept", cols).
		Float64("negative_fraction", negFrac).
		Float64("missing_fraction", 1-float64(informative)/float64(total)).
		Msg("Rebinned batch assembled")
}
