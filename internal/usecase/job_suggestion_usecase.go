package usecase

import (
	"context"
	"errors"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
	"career-match/internal/domain/user"
)

type SuggestedJobs struct {
	Topic matching.Topic
	Jobs  []job.Posting
	// LowScore is set when the recorded ATS score is below the feed threshold.
	LowScore bool
}

type JobSuggestionUsecase interface {
	Suggest(ctx context.Context, seeker Actor) (SuggestedJobs, error)
}

type JobSuggestions struct {
	profiles  user.ProfileRepository
	suggester *matching.Suggester
}

func NewJobSuggestionUsecase(profiles user.ProfileRepository, suggester *matching.Suggester) *JobSuggestions {
	return &JobSuggestions{profiles: profiles, suggester: suggester}
}

func (u *JobSuggestions) Suggest(ctx context.Context, seeker Actor) (SuggestedJobs, error) {
	p, err := u.profiles.Get(ctx, seeker.UserID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return SuggestedJobs{}, ErrProfileNotFound
		}
		return SuggestedJobs{}, ErrInternal
	}

	signal := u.suggester.Signal(p.ResumeText)
	return SuggestedJobs{
		Topic:    signal.Topic,
		Jobs:     u.suggester.Suggest(p.ResumeText),
		LowScore: p.ATSScore != nil && matching.Route(*p.ATSScore) == matching.DestinationSuggestions,
	}, nil
}
