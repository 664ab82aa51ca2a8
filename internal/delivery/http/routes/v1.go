package routes

import (
	"career-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers, g handler.Guards) {
	if r == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(r)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r, g)
	}
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(r, g)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r, g)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(r, g)
	}
	// Browsers cannot set headers on a WebSocket handshake, so the feed is
	// public; it only carries what GET /jobs already shows.
	if h.JobsFeed != nil {
		r.Get("/ws/jobs", h.JobsFeed)
	}
}
