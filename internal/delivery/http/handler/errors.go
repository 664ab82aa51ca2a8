package handler

import (
	"errors"
	"strings"

	"career-match/internal/delivery/http/middleware"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError turns usecase sentinels into client-facing AppErrors.
// Anything unrecognized becomes a 500 whose cause is only logged.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrDeadlineInPast):
		status = fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrUnsupportedResume):
		status = fiber.StatusUnsupportedMediaType
	case errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrInvalidRefreshToken),
		errors.Is(err, usecase.ErrRefreshTokenExpired),
		errors.Is(err, usecase.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrAnalysisNotFound),
		errors.Is(err, usecase.ErrSuggestionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrJobClosed):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		return middleware.NewAppError(status, "Internal server error", nil, err)
	}
	return middleware.NewAppError(status, clientMessage(err), nil, err)
}

// clientMessage drops the "invalid input: " style prefix that usecases add
// when wrapping a sentinel with detail.
func clientMessage(err error) string {
	msg := err.Error()
	for _, s := range []error{usecase.ErrInvalidInput, usecase.ErrUnsupportedResume} {
		if rest, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

func badRequest(msg string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, cause)
}

func currentActor(c fiber.Ctx) (usecase.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return usecase.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return actor, nil
}
