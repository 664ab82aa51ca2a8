package handler

import (
	"strings"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	usecase usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/verify", h.Verify)
	r.Post("/auth/refresh", h.Refresh)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	expires, err := h.usecase.RequestCode(c.Context(), usecase.RequestCodeInput{Email: req.Email, Role: req.Role})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Write(c, fiber.StatusOK, "Verification code sent", dto.LoginResponse{
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		CodeExpiresAt: expires,
	})
}

func (h *AuthHandler) Verify(c fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request body", err)
	}
	if strings.TrimSpace(req.Code) == "" {
		return badRequest("code is required", nil)
	}

	session, err := h.usecase.Verify(c.Context(), req.Email, strings.TrimSpace(req.Code))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewSessionResponse(session))
}

// Refresh takes the refresh token from the body, or from the Authorization
// header when the body has none.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest("Invalid request body", err)
		}
	}
	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		token, _ = middleware.BearerToken(c.Get(fiber.HeaderAuthorization))
	}
	if token == "" {
		return badRequest("refresh_token is required", nil)
	}

	pair, err := h.usecase.Refresh(c.Context(), token)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewTokenResponse(pair))
}
