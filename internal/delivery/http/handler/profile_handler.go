package handler

import (
	"io"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const resumeFormField = "resume"

type ProfileHandler struct {
	usecase usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Get("/roles", h.Roles)
	r.Get("/profile", g.Seeker, h.Get)
	r.Put("/profile", g.Seeker, h.Save)
	r.Put("/profile/resume-text", g.Seeker, h.UpdateResumeText)
}

func (h *ProfileHandler) Roles(c fiber.Ctx) error {
	return response.OK(c, dto.RolesResponse{Roles: h.usecase.ListRoles()})
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	p, err := h.usecase.GetProfile(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewProfileResponse(p))
}

// Save reads a multipart form with a "role" field and a "resume" file.
func (h *ProfileHandler) Save(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(resumeFormField)
	if err != nil {
		return badRequest("resume file is required", err)
	}
	if fh.Size > usecase.MaxResumeBytes {
		return response.Error(c, fiber.StatusRequestEntityTooLarge, "resume file is too large", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest("resume file could not be read", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxResumeBytes+1))
	if err != nil {
		return badRequest("resume file could not be read", err)
	}

	p, err := h.usecase.SaveProfile(c.Context(), actor, usecase.SaveProfileInput{
		Role:        c.FormValue("role"),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Write(c, fiber.StatusOK, "Profile saved", dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateResumeText(c fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req dto.ResumeTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	p, err := h.usecase.UpdateResumeText(c.Context(), actor, req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewProfileResponse(p))
}
