package handler

import (
	"strconv"
	"strings"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/domain/matching"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	feed        usecase.JobFeedUsecase
	post        usecase.JobPostUsecase
	suggestions usecase.JobSuggestionUsecase
}

func NewJobHandler(feed usecase.JobFeedUsecase, post usecase.JobPostUsecase, suggestions usecase.JobSuggestionUsecase) *JobHandler {
	return &JobHandler{feed: feed, post: post, suggestions: suggestions}
}

// RegisterRoutes mounts the fixed /jobs paths before /jobs/:id so they are
// matched first.
func (h *JobHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Get("/jobs", g.Auth, h.List)
	r.Get("/jobs/locations", g.Auth, h.Locations)
	r.Get("/jobs/mine", g.Poster, h.ListMine)
	r.Get("/jobs/suggestions", g.Seeker, h.Suggestions)
	r.Post("/jobs", g.Poster, h.Post)
	r.Get("/jobs/:id", g.Auth, h.Get)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return err
	}
	jobs, err := h.feed.ListFeed(c.Context(), criteria)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewJobResponses(jobs))
}

// criteriaFromQuery reads search, location and min_salary. An absent or
// empty min_salary means no salary filter.
func criteriaFromQuery(c fiber.Ctx) (matching.Criteria, error) {
	criteria := matching.Criteria{
		SearchTerm: c.Query("search"),
		Location:   c.Query("location"),
	}
	if raw := strings.TrimSpace(c.Query("min_salary")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return matching.Criteria{}, badRequest("min_salary must be an integer", err)
		}
		criteria.MinSalary = &v
	}
	return criteria, nil
}

func (h *JobHandler) Locations(c fiber.Ctx) error {
	locs, err := h.feed.Locations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.LocationsResponse{Locations: locs})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	p, err := h.feed.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewJobResponse(p))
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.PostJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	p, err := h.post.PostJob(c.Context(), actor, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Write(c, fiber.StatusCreated, "Job posted", dto.NewJobResponse(p))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	jobs, err := h.post.ListMine(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewJobResponses(jobs))
}

func (h *JobHandler) Suggestions(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	s, err := h.suggestions.Suggest(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewSuggestionsResponse(s))
}
