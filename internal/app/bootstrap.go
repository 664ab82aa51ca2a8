package app

import (
	"fmt"
	"log"
	"strings"

	"career-match/internal/config"
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/delivery/http/routes"
	"career-match/internal/domain/ats"
	"career-match/internal/domain/matching"
	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"
	"career-match/internal/usecase"
	"career-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// bodyLimit leaves room for multipart overhead around the largest résumé.
const bodyLimit = usecase.MaxResumeBytes + 1<<20

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *log.Logger, registry *routes.Registry) *App {
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return NewFromContainer(c), c.Close, nil
}

// NewFromContainer wires repositories, usecases and handlers over c.
func NewFromContainer(c *Container) *App {
	return New(c.Config, c.Logger, buildRegistry(c))
}

func buildRegistry(c *Container) *routes.Registry {
	cfg := c.Config
	loc := cfg.App.Location()
	logger := c.Logger

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)

	users := repository.NewPostgresUserRepository(c.DB)
	codes := repository.NewPostgresVerificationCodeRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	analyses := repository.NewPostgresAnalysisRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	apps := repository.NewPostgresApplicationRepository(c.DB)

	table := ats.DefaultKeywordTable()
	scorer := ats.NewScorer(table)

	authUC := usecase.NewAuthUsecase(users, codes, jwtSvc, usecase.AuthConfig{
		CodeTTL: cfg.Auth.CodeTTL,
		DevCode: cfg.Auth.DevCode,
	}, logger, nil)
	profileUC := usecase.NewProfileUsecase(profiles, analyses, c.Store, table, logger, nil)
	analysisUC := usecase.NewAnalysisUsecase(profiles, analyses, scorer, logger, nil)
	feedUC := usecase.NewJobFeedUsecase(jobs, c.Cache, loc, logger, nil)
	postUC := usecase.NewJobPostUsecase(jobs, c.Cache, ws.NewNotifier(c.Hub), c.Publisher, loc, logger, nil)
	suggester := matching.DefaultSuggester()
	suggestUC := usecase.NewJobSuggestionUsecase(profiles, suggester)
	appUC := usecase.NewApplicationUsecase(jobs, apps, profiles, suggester.Pool(), c.Publisher, loc, logger, nil)

	checks := map[string]handler.Pinger{"database": c.DB}
	if c.Cache.Available() {
		checks["cache"] = c.Cache
	}

	return routes.NewRegistry(routes.Handlers{
		Health:       handler.NewHealthHandler(checks),
		Auth:         handler.NewAuthHandler(authUC),
		Profile:      handler.NewProfileHandler(profileUC),
		Analysis:     handler.NewAnalysisHandler(analysisUC),
		Jobs:         handler.NewJobHandler(feedUC, postUC, suggestUC),
		Applications: handler.NewApplicationHandler(appUC),
		JobsFeed:     ws.NewHandler(c.Hub, logger).HandleJobsFeed,
	}, middleware.NewAuthMiddleware(jwtSvc))
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
