package simqso

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/spectraml/qsonoise/internal/config"
)

// Server serves a Simulator over HTTP so the batch pipeline can treat the
// reference spectrum generator as an external collaborator.
type Server struct {
	App *fiber.App
	cfg *config.ServerEnvConfig
	sim Simulator
}

func NewServer(cfg *config.ServerEnvConfig, sim Simulator) *Server {
	app := fiber.New(fiber.Config{
		Prefork:      false,
		ErrorHandler: fiberErrHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    cfg.BodySizeLimit,
	})

	app.Use(recover.New()) // add panic recovery
	app.Use(compress.New(compress.Config{Level: compress.LevelBestCompression}))

	s := &Server{App: app, cfg: cfg, sim: sim}

	app.Get("/health", s.handleHealth)
	app.Post("/simulate", s.handleSimulate)

	return s
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Success: true})
}

func (s *Server) handleSimulate(c *fiber.Ctx) error {
	var req SimulateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("Failed to parse simulate request body")
		return c.Status(fiber.StatusBadRequest).JSON(SimulateResponse{Error: "invalid request body"})
	}
	if len(req.Wavelength) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(SimulateResponse{Error: "wavelength grid is required"})
	}

	fl, err := s.sim.Simulate(req.Wavelength, req.Z, req.Seed)
	if err != nil {
		log.Error().Err(err).Float64("z", req.Z).Msg("Simulation failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(SimulateResponse{Error: err.Error()})
	}

	return c.JSON(SimulateResponse{Success: true, Flux: fl})
}

// Listen blocks serving the simulator until the listener fails.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	log.Info().Str("addr", addr).Msg("Simulator listening")
	return s.App.Listen(addr)
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(SimulateResponse{Error: err.Error()})
}
