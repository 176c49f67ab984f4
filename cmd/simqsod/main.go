// Command simqsod serves the reference quasar simulator over HTTP so the
// batch pipeline (and anything else) can request synthetic spectra from a
// shared process.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/spectraml/qsonoise/internal/config"
	"github.com/spectraml/qsonoise/internal/simqso"
	"github.com/spectraml/qsonoise/internal/utils/logger"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	server := simqso.NewServer(&cfg.ServerEnvConfig, simqso.Local{})
	if err := server.Listen(); err != nil {
		log.Fatal().Err(err).Msg("Simulator server stopped")
	}
}
