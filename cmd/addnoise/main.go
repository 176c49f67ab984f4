// Command addnoise synthesizes a noisy, rebinned quasar spectra dataset:
// it deshifts every object to its rest frame, applies a photon-noise
// model, resamples onto the common logarithmic grid and optionally
// renormalizes against a reference quasar spectrum.
//
// To generate the renormalized, noisy dataset:
//
//	addnoise --seed 100921 --in qsos.json -o qsos_noisy.json.zst --renorm --add-noise
package main

import (
	"context"
	"flag"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spectraml/qsonoise/internal/config"
	"github.com/spectraml/qsonoise/internal/qsofile"
	"github.com/spectraml/qsonoise/internal/simqso"
	"github.com/spectraml/qsonoise/internal/spectra"
	"github.com/spectraml/qsonoise/internal/utils/logger"
)

func main() {
	var out string
	seed := flag.Uint64("seed", spectra.DefaultSeed, "Random seed")
	in := flag.String("in", "qsos.json", "Input dataset path")
	flag.StringVar(&out, "o", "", "Output filename")
	flag.StringVar(&out, "out", "", "Output filename (same as -o)")
	renorm := flag.Bool("renorm", false, "Whether to renormalize or not.")
	addNoise := flag.Bool("add-noise", false, "Whether to add noise or not.")

	logger.Init()

	if out == "" {
		log.Fatal().Msg("Output path is required (-o)")
	}

	start := time.Now()

	ds, err := qsofile.Read(*in)
	if err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("Failed to read input dataset")
	}
	log.Info().Int("objects", len(ds.Flux)).Int("obs_bins", len(ds.Wavelength)).Msg("Input dataset loaded")

	var ref []float64
	if *renorm {
		log.Info().Msg("Generating scaling spectrum")
		wScale, _ := spectra.CommonGrids()
		ref, err = referenceSpectrum(wScale)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate the reference spectrum")
		}
	}

	pipeline := spectra.NewPipeline(
		spectra.WithSeed(*seed),
		spectra.WithNoise(*addNoise),
		spectra.WithRenorm(*renorm),
	)

	result, err := pipeline.Run(ds.Flux, ds.Wavelength, ds.Z, ref)
	if err != nil {
		log.Fatal().Err(err).Msg("Pipeline failed")
	}

	log.Info().Str("path", out).Msg("Saving spectra")
	if err := qsofile.Write(out, qsofile.FromMatrices(result.Flux, result.Ivar, result.Wavelength, result.Redshifts)); err != nil {
		log.Fatal().Err(err).Str("path", out).Msg("Failed to write output dataset")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("Done")
}

// referenceSpectrum obtains the renormalization target over the scale
// grid, from the external simulator when SIMQSO_URL is set and from the
// in-process generator otherwise.
func referenceSpectrum(wScale []float64) ([]float64, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.SimulatorURL == "" {
		log.Debug().Msg("No simulator URL configured, using in-process generator")
		return simqso.Local{}.Simulate(wScale, spectra.RefQuasarZ, spectra.RefQuasarSeed)
	}

	client, err := simqso.NewClient(&cfg.SimulatorEnvConfig)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ClientTimeout)
	defer cancel()
	if err := client.WaitReady(ctx); err != nil {
		return nil, err
	}

	return client.Simulate(wScale, spectra.RefQuasarZ, spectra.RefQuasarSeed)
}
