package dto

import (
	"time"

	"career-match/internal/pkg/jwt"
	"career-match/internal/usecase"
)

type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Email         string    `json:"email"`
	CodeExpiresAt time.Time `json:"code_expires_at"`
}

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	TokenType        string    `json:"token_type"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type SessionResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

func NewTokenResponse(p jwt.Pair) TokenResponse {
	return TokenResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		TokenType:        "Bearer",
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

func NewSessionResponse(s usecase.Session) SessionResponse {
	return SessionResponse{
		User: UserResponse{
			ID:    s.User.ID.String(),
			Email: s.User.Email,
			Role:  string(s.User.Role),
		},
		Tokens: NewTokenResponse(s.Tokens),
	}
}
