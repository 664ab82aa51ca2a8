package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type Repository interface {
	// Upsert creates the user or updates the role of an existing email.
	Upsert(ctx context.Context, email string, role Role) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	Save(ctx context.Context, p Profile) error
	UpdateResumeText(ctx context.Context, userID uuid.UUID, text string, at time.Time) error
	SetATSScore(ctx context.Context, userID uuid.UUID, score int, at time.Time) error
}
