// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	SimulatorEnvConfig
	ServerEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SimulatorEnvConfig configures access to the reference quasar simulator.
// An empty SIMQSO_URL selects the in-process generator.
type SimulatorEnvConfig struct {
	SimulatorURL  string        `env:"SIMQSO_URL"`
	ClientTimeout time.Duration `env:"SIMQSO_CLIENT_TIMEOUT, default=120s"`
	RetryMax      int           `env:"SIMQSO_RETRY_MAX, default=3"`
	RetryWait     time.Duration `env:"SIMQSO_RETRY_WAIT, default=2s"`
}

// ServerEnvConfig configures the simulator service.
type ServerEnvConfig struct {
	Address       string `env:"SIMQSOD_IP, default=127.0.0.1"`
	Port          int    `env:"SIMQSOD_PORT, default=5003"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT, default=16777216"`
}
