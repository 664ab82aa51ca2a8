package handler

import (
	"context"
	"time"

	"career-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

// Health reports each dependency as up or down. The service itself is
// healthy while the database answers; other dependencies are degraded.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	status := fiber.StatusOK
	for name, p := range h.checks {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			deps[name] = "down"
			if name == "database" {
				status = fiber.StatusServiceUnavailable
			}
			continue
		}
		deps[name] = "up"
	}

	msg := "healthy"
	if status != fiber.StatusOK {
		msg = "unhealthy"
	}
	return response.Write(c, status, msg, fiber.Map{"dependencies": deps})
}
