package handler

import (
	"career-match/internal/delivery/http/dto"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	usecase usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Post("/jobs/:id/applications", g.Seeker, h.Apply)
	r.Get("/jobs/:id/applications", g.Poster, h.ListForJob)
	r.Get("/applications", g.Seeker, h.ListMine)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	app, err := h.usecase.Apply(c.Context(), actor, c.Params("id"), req.CoverLetter)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Write(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	apps, err := h.usecase.ListMine(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewApplicationResponses(apps))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	apps, err := h.usecase.ListForJob(c.Context(), actor, c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewApplicationResponses(apps))
}
