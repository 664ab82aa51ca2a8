package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
	"career-match/internal/domain/user"
	"career-match/internal/infrastructure/broker"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Company       string `json:"company"`
	UserEmail     string `json:"user_email"`
	SubmittedAt   string `json:"submitted_at"`
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, seeker Actor, jobID, coverLetter string) (job.Application, error)
	ListMine(ctx context.Context, seeker Actor) ([]job.Application, error)
	ListForJob(ctx context.Context, poster Actor, jobID string) ([]job.Application, error)
}

type Applications struct {
	jobs      repository.JobRepository
	apps      repository.ApplicationRepository
	profiles  user.ProfileRepository
	publisher EventPublisher
	curated   map[string]job.Posting
	loc       *time.Location
	logger    *log.Logger
	now       Clock
}

// NewApplicationUsecase accepts the curated suggestion pool so candidates can
// apply to a suggested posting that no poster has stored yet.
func NewApplicationUsecase(jobs repository.JobRepository, apps repository.ApplicationRepository, profiles user.ProfileRepository, curated []job.Posting, publisher EventPublisher, loc *time.Location, logger *log.Logger, now Clock) *Applications {
	if loc == nil {
		loc = time.UTC
	}
	pool := make(map[string]job.Posting, len(curated))
	for _, p := range curated {
		pool[p.ID] = p
	}
	return &Applications{jobs: jobs, apps: apps, profiles: profiles, curated: pool, publisher: publisher, loc: loc, logger: logger, now: clockOrNow(now)}
}

func (u *Applications) job(ctx context.Context, id string) (job.Posting, error) {
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

// applicableJob falls back to the curated pool and stores the curated posting
// so the application row has a job to reference.
func (u *Applications) applicableJob(ctx context.Context, id string) (job.Posting, error) {
	p, err := u.job(ctx, id)
	if !errors.Is(err, ErrNotFound) {
		return p, err
	}
	c, ok := u.curated[id]
	if !ok {
		return job.Posting{}, ErrNotFound
	}
	if err := u.jobs.CreateIfMissing(ctx, c); err != nil {
		logf(u.logger, "[Applications] store curated job=%s failed: %v", id, err)
		return job.Posting{}, ErrInternal
	}
	logf(u.logger, "[Applications] stored curated job=%s", id)
	return c, nil
}

func (u *Applications) Apply(ctx context.Context, seeker Actor, jobID, coverLetter string) (job.Application, error) {
	coverLetter = strings.TrimSpace(coverLetter)
	if coverLetter == "" {
		return job.Application{}, fmt.Errorf("%w: cover letter is required", ErrInvalidInput)
	}
	p, err := u.applicableJob(ctx, jobID)
	if err != nil {
		return job.Application{}, err
	}
	now := u.now().In(u.loc)
	if !matching.IsActive(p, now) {
		return job.Application{}, ErrJobClosed
	}

	resumeName := ""
	if prof, err := u.profiles.Get(ctx, seeker.UserID); err == nil {
		resumeName = prof.ResumeName
	} else if !errors.Is(err, user.ErrProfileNotFound) {
		return job.Application{}, ErrInternal
	}

	a, err := u.apps.Create(ctx, job.Application{
		JobID:       p.ID,
		UserID:      seeker.UserID.String(),
		JobTitle:    p.Title,
		Company:     p.Company,
		UserEmail:   seeker.Email,
		CoverLetter: coverLetter,
		ResumeName:  resumeName,
		SubmittedAt: now.UTC(),
	})
	if err != nil {
		logf(u.logger, "[Applications] create failed job=%s user=%s err=%v", p.ID, seeker.UserID, err)
		return job.Application{}, ErrInternal
	}
	logf(u.logger, "[Applications] submitted application=%s job=%s user=%s", a.ID, a.JobID, seeker.UserID)

	if u.publisher != nil {
		err := u.publisher.Publish(ctx, broker.RoutingApplicationSubmitted, ApplicationSubmittedPayload{
			ApplicationID: a.ID,
			JobID:         a.JobID,
			JobTitle:      a.JobTitle,
			Company:       a.Company,
			UserEmail:     a.UserEmail,
			SubmittedAt:   a.SubmittedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			logf(u.logger, "[Applications] publish application.submitted failed id=%s err=%v", a.ID, err)
		}
	}
	return a, nil
}

func (u *Applications) ListMine(ctx context.Context, seeker Actor) ([]job.Application, error) {
	out, err := u.apps.ListByUser(ctx, seeker.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) ListForJob(ctx context.Context, poster Actor, jobID string) ([]job.Application, error) {
	p, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if p.PostedBy != poster.UserID.String() {
		return nil, ErrForbidden
	}
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := u.apps.ListByJob(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
