package handler

import (
	"career-match/internal/delivery/http/dto"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	usecase usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Post("/ats/preview", h.Preview)
	r.Post("/resume/analysis", g.Seeker, h.Analyze)
	r.Get("/resume/analysis", g.Seeker, h.Get)
	r.Post("/resume/suggestions/:key/apply", g.Seeker, h.ApplySuggestion)
	r.Post("/resume/proceed", g.Seeker, h.Proceed)
}

func (h *AnalysisHandler) Preview(c fiber.Ctx) error {
	var req dto.PreviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}
	view, err := h.usecase.Preview(req.Role, req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewAnalysisResponse(view))
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	view, err := h.usecase.Analyze(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewAnalysisResponse(view))
}

func (h *AnalysisHandler) Get(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	view, err := h.usecase.GetAnalysis(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewAnalysisResponse(view))
}

func (h *AnalysisHandler) ApplySuggestion(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	applied, err := h.usecase.ApplySuggestion(c.Context(), actor, c.Params("key"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Write(c, fiber.StatusOK, "Suggestion applied", dto.NewAppliedSuggestionResponse(applied))
}

func (h *AnalysisHandler) Proceed(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	res, err := h.usecase.Proceed(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.ProceedResponse{Score: res.Score, Destination: string(res.Destination)})
}
