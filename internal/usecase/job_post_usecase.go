package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/infrastructure/broker"
	"career-match/internal/repository"
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type JobPostedNotifier interface {
	JobPosted(p job.Posting)
}

type PostJobInput struct {
	Title               string
	Company             string
	Location            string
	Description         string
	SalaryRange         string
	WorkersNeeded       int
	ApplicationDeadline string
}

type JobPostedPayload struct {
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	PostedBy  string `json:"posted_by"`
	CreatedAt string `json:"created_at"`
}

type JobPostUsecase interface {
	PostJob(ctx context.Context, poster Actor, in PostJobInput) (job.Posting, error)
	ListMine(ctx context.Context, poster Actor) ([]job.Posting, error)
}

type JobPost struct {
	jobs      repository.JobRepository
	cache     FeedCache
	notifier  JobPostedNotifier
	publisher EventPublisher
	loc       *time.Location
	logger    *log.Logger
	now       Clock
}

func NewJobPostUsecase(jobs repository.JobRepository, cache FeedCache, notifier JobPostedNotifier, publisher EventPublisher, loc *time.Location, logger *log.Logger, now Clock) *JobPost {
	if loc == nil {
		loc = time.UTC
	}
	return &JobPost{jobs: jobs, cache: cache, notifier: notifier, publisher: publisher, loc: loc, logger: logger, now: clockOrNow(now)}
}

func (u *JobPost) PostJob(ctx context.Context, poster Actor, in PostJobInput) (job.Posting, error) {
	now := u.now().In(u.loc)
	p, err := buildPosting(in, now)
	if err != nil {
		return job.Posting{}, err
	}
	p.PostedBy = poster.UserID.String()

	created, err := u.jobs.Create(ctx, p)
	if err != nil {
		logf(u.logger, "[Jobs] create failed poster=%s err=%v", poster.UserID, err)
		return job.Posting{}, ErrInternal
	}
	logf(u.logger, "[Jobs] posted job=%s poster=%s title=%q", created.ID, poster.UserID, created.Title)

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, FeedCachePattern); err != nil {
			logf(u.logger, "[Jobs] feed cache invalidation failed: %v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.JobPosted(created)
	}
	if u.publisher != nil {
		err := u.publisher.Publish(ctx, broker.RoutingJobPosted, JobPostedPayload{
			JobID:     created.ID,
			Title:     created.Title,
			Company:   created.Company,
			Location:  created.Location,
			PostedBy:  created.PostedBy,
			CreatedAt: created.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			logf(u.logger, "[Jobs] publish job.posted failed job=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *JobPost) ListMine(ctx context.Context, poster Actor) ([]job.Posting, error) {
	out, err := u.jobs.ListByPoster(ctx, poster.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// buildPosting validates a new posting. Every field is required and the
// deadline may be today but not earlier, compared by calendar date in now's
// location.
func buildPosting(in PostJobInput, now time.Time) (job.Posting, error) {
	p := job.Posting{
		Title:         strings.TrimSpace(in.Title),
		Company:       strings.TrimSpace(in.Company),
		Location:      strings.TrimSpace(in.Location),
		Description:   strings.TrimSpace(in.Description),
		SalaryRange:   strings.TrimSpace(in.SalaryRange),
		WorkersNeeded: in.WorkersNeeded,
		CreatedAt:     now.UTC(),
	}

	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"title", p.Title},
		{"company", p.Company},
		{"location", p.Location},
		{"description", p.Description},
		{"salary_range", p.SalaryRange},
		{"application_deadline", strings.TrimSpace(in.ApplicationDeadline)},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return job.Posting{}, fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if p.WorkersNeeded < 1 {
		return job.Posting{}, fmt.Errorf("%w: workers_needed must be at least 1", ErrInvalidInput)
	}

	deadline, err := time.Parse(job.DateLayout, strings.TrimSpace(in.ApplicationDeadline))
	if err != nil {
		return job.Posting{}, fmt.Errorf("%w: application_deadline must be YYYY-MM-DD", ErrInvalidInput)
	}
	y, m, d := now.Date()
	if deadline.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return job.Posting{}, ErrDeadlineInPast
	}
	p.ApplicationDeadline = &deadline
	return p, nil
}
