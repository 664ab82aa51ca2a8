package routes

import (
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything the API mounts. Nil handlers are skipped.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Analysis     *handler.AnalysisHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	JobsFeed     fiber.Handler
}

type Registry struct {
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{handlers: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers, r.guards())
}

func (r *Registry) guards() handler.Guards {
	return handler.Guards{
		Auth:   r.auth.Require(),
		Seeker: r.auth.Require(user.RoleJobSeeker),
		Poster: r.auth.Require(user.RoleJobPoster),
	}
}
