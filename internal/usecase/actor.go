package usecase

import (
	"log"
	"time"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the signed-in user a request acts on behalf of.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// Clock returns the current time. Usecases convert it to the configured
// location before deriving a calendar date.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func logf(l *log.Logger, format string, args ...any) {
	if l != nil {
		l.Printf(format, args...)
	}
}
