package usecase

import (
	"context"
	"errors"
	"testing"

	"career-match/internal/domain/matching"
	"career-match/internal/domain/user"
)

func TestJobSuggestions_Suggest(t *testing.T) {
	s := seeker()
	score := 30
	profiles := newFakeProfiles(user.Profile{UserID: s.UserID, ResumeText: "Managed social media for a bakery", ATSScore: &score})
	uc := NewJobSuggestionUsecase(profiles, matching.DefaultSuggester())

	got, err := uc.Suggest(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Topic != matching.TopicMarketing || !got.LowScore {
		t.Fatalf("unexpected result %+v", got)
	}
	if len(got.Jobs) != 1 || got.Jobs[0].ID != matching.DefaultCuratedPool()[0].ID {
		t.Fatalf("expected posting 101, got %+v", got.Jobs)
	}
}

func TestJobSuggestions_NoScoreYet(t *testing.T) {
	s := seeker()
	profiles := newFakeProfiles(user.Profile{UserID: s.UserID, ResumeText: "kernel hacker"})
	got, err := NewJobSuggestionUsecase(profiles, matching.DefaultSuggester()).Suggest(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.LowScore || got.Topic != matching.TopicNone || len(got.Jobs) != 4 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestJobSuggestions_Errors(t *testing.T) {
	uc := NewJobSuggestionUsecase(newFakeProfiles(), matching.DefaultSuggester())
	if _, err := uc.Suggest(context.Background(), seeker()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	broken := newFakeProfiles()
	broken.err = errBoom
	uc = NewJobSuggestionUsecase(broken, matching.DefaultSuggester())
	if _, err := uc.Suggest(context.Background(), seeker()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
