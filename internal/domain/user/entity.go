package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleJobPoster Role = "job_poster"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleJobSeeker, RoleJobPoster:
		return r, true
	default:
		return "", false
	}
}

type User struct {
	ID        uuid.UUID
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is what a job seeker submitted for scoring: a target job role and
// the current résumé text. ATSScore is set once the seeker proceeds past the
// analysis.
type Profile struct {
	UserID          uuid.UUID
	TargetRole      string
	ResumeName      string
	ResumeText      string
	ResumeObjectKey string
	ATSScore        *int
	UpdatedAt       time.Time
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
