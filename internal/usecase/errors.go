package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternal            = errors.New("internal error")
	ErrInvalidCode         = errors.New("invalid or expired verification code")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrUnsupportedResume   = errors.New("unsupported resume file")
	ErrAnalysisNotFound    = errors.New("resume has not been analyzed")
	ErrSuggestionNotFound  = errors.New("suggestion not found")
	ErrDeadlineInPast      = errors.New("application deadline cannot be in the past")
	ErrJobClosed           = errors.New("job is no longer accepting applications")
)
