package middleware

import (
	"errors"
	"slices"
	"strings"

	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware requires a valid access token and stores the caller as a
// usecase.Actor in request locals.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return m.Require()
}

// Require is Middleware restricted to callers holding one of roles. With no
// roles any signed-in caller passes.
func (m *AuthMiddleware) Require(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor, err := m.authenticate(c)
		if err != nil {
			return err
		}
		if len(roles) > 0 && !slices.Contains(roles, actor.Role) {
			return NewAppError(fiber.StatusForbidden, "This action requires the "+string(roles[0])+" role", nil, nil)
		}
		c.Locals(ctxActorKey, actor)
		return c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c fiber.Ctx) (usecase.Actor, error) {
	token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return usecase.Actor{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.Parse(token, jwt.TokenTypeAccess)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return usecase.Actor{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return usecase.Actor{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}
	role, ok := user.ParseRole(claims.Role)
	if !ok {
		return usecase.Actor{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
	}
	return usecase.Actor{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}

func ActorFrom(c fiber.Ctx) (usecase.Actor, bool) {
	a, ok := c.Locals(ctxActorKey).(usecase.Actor)
	return a, ok
}

func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
