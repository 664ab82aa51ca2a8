package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
	"career-match/internal/repository"
)

type FeedCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	// Available reports false when the backend is down and every call is a no-op.
	Available() bool
}

type JobFeedUsecase interface {
	ListFeed(ctx context.Context, c matching.Criteria) ([]job.Posting, error)
	Locations(ctx context.Context) ([]string, error)
	GetJob(ctx context.Context, id string) (job.Posting, error)
}

type JobFeed struct {
	jobs   repository.JobRepository
	cache  FeedCache
	loc    *time.Location
	logger *log.Logger
	now    Clock

	lockWait time.Duration
}

// NewJobFeedUsecase accepts a nil cache. loc decides which calendar day
// "today" is when expiring postings.
func NewJobFeedUsecase(jobs repository.JobRepository, cache FeedCache, loc *time.Location, logger *log.Logger, now Clock) *JobFeed {
	if loc == nil {
		loc = time.UTC
	}
	return &JobFeed{jobs: jobs, cache: cache, loc: loc, logger: logger, now: clockOrNow(now), lockWait: 300 * time.Millisecond}
}

func (u *JobFeed) cacheUp() bool {
	return u.cache != nil && u.cache.Available()
}

func (u *JobFeed) today() time.Time {
	return u.now().In(u.loc)
}

func (u *JobFeed) ListFeed(ctx context.Context, c matching.Criteria) ([]job.Posting, error) {
	now := u.today()
	key := FeedCacheKey(c, now)
	lockKey := FeedLockKey(key)

	if hit, ok := u.cached(ctx, key); ok {
		return hit, nil
	}

	lockAcquired := false
	if u.cacheUp() {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		switch {
		case err == nil && ok:
			lockAcquired = true
		case err == nil:
			// Another request is filling this key; give it a moment.
			wait := u.lockWait + time.Duration(rand.Int64N(int64(u.lockWait/2)+1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if hit, ok := u.cached(ctx, key); ok {
				return hit, nil
			}
			logf(u.logger, "[Jobs] lock wait fallback: %s", lockKey)
		}
	}

	corpus, err := u.jobs.ListAll(ctx)
	if err != nil {
		logf(u.logger, "[Jobs] load corpus failed: %v", err)
		return nil, ErrInternal
	}
	out := matching.FilterJobs(corpus, now, c)

	if u.cacheUp() {
		if err := u.cache.SetJSON(ctx, key, out, 0); err == nil {
			logf(u.logger, "[Jobs] cache SET: %s items=%d", key, len(out))
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func (u *JobFeed) cached(ctx context.Context, key string) ([]job.Posting, bool) {
	if !u.cacheUp() {
		return nil, false
	}
	var out []job.Posting
	hit, err := u.cache.GetJSON(ctx, key, &out)
	if err != nil || !hit {
		return nil, false
	}
	if out == nil {
		out = []job.Posting{}
	}
	logf(u.logger, "[Jobs] cache HIT: %s", key)
	return out, true
}

func (u *JobFeed) Locations(ctx context.Context) ([]string, error) {
	corpus, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return matching.Locations(matching.FilterActive(corpus, u.today())), nil
}

func (u *JobFeed) GetJob(ctx context.Context, id string) (job.Posting, error) {
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}
