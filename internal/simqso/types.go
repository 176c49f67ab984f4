package simqso

// Simulator produces a synthetic quasar flux array over a wavelength grid.
// Implementations must be deterministic for a given grid, redshift and
// seed, and must return flux normalized to a median of 1 in erg space.
type Simulator interface {
	Simulate(wave []float64, z float64, seed uint64) ([]float64, error)
}

type SimulateRequest struct {
	Wavelength []float64 `json:"wavelength"`
	Z          float64   `json:"z"`
	Seed       uint64    `json:"seed"`
}

type SimulateResponse struct {
	Success bool      `json:"success"`
	Flux    []float64 `json:"flux,omitempty"`
	Error   string    `json:"error,omitempty"`
}

type HealthResponse struct {
	Success bool `json:"success"`
}
