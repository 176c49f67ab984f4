// Package simqso provides the reference quasar spectrum used as the
// renormalization target, either from an external simulator service or
// from a deterministic in-process generator.
package simqso

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/spectraml/qsonoise/internal/config"
)

type Client struct {
	cfg    *config.SimulatorEnvConfig
	client *resty.Client
}

func NewClient(cfg *config.SimulatorEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	client := resty.New().
		SetBaseURL(cfg.SimulatorURL).
		SetTimeout(cfg.ClientTimeout).
		SetRetryCount(cfg.RetryMax).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait * 2).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &Client{
		cfg:    cfg,
		client: client,
	}, nil
}

func (c *Client) Simulate(wave []float64, z float64, seed uint64) ([]float64, error) {
	var out SimulateResponse
	resp, err := c.client.R().
		SetBody(SimulateRequest{Wavelength: wave, Z: z, Seed: seed}).
		SetResult(&out).
		Post("/simulate")
	if err != nil {
		log.Error().Err(err).Msg("simulate request failed")
		return nil, fmt.Errorf("simulate: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("simulate non-2xx")
		return nil, fmt.Errorf("simulate status %d: %s", resp.StatusCode(), resp.String())
	}
	if !out.Success {
		return nil, fmt.Errorf("simulate api returned success=false: %s", out.Error)
	}
	if len(out.Flux) != len(wave) {
		return nil, fmt.Errorf("simulate returned %d flux bins for %d wavelengths", len(out.Flux), len(wave))
	}
	return out.Flux, nil
}

// WaitReady polls the simulator health endpoint until it responds, since
// the simulator may take a while to come up before the first spectrum.
func (c *Client) WaitReady(ctx context.Context) error {
	rc := retryablehttp.NewClient()
	rc.RetryMax = c.cfg.RetryMax
	rc.RetryWaitMin = c.cfg.RetryWait
	rc.RetryWaitMax = c.cfg.RetryWait * 2
	rc.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.cfg.SimulatorURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	resp, err := rc.Do(req)
	if err != nil {
		return fmt.Errorf("simulator not ready: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("simulator health status %d", resp.StatusCode)
	}
	return nil
}
