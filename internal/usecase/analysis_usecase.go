package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"career-match/internal/domain/ats"
	"career-match/internal/domain/matching"
	"career-match/internal/domain/user"
	"career-match/internal/repository"
)

const (
	MessageGoodFit          = "Your resume seems well-aligned for this role!"
	MessageNeedsImprovement = "Your resume could be optimized for Applicant Tracking Systems (ATS)."
)

// AnalysisView is an analysis with the suggestions still pending for it.
type AnalysisView struct {
	Result      ats.AnalysisResult
	Suggestions ats.SuggestionList
	Message     string
}

type AppliedSuggestion struct {
	Applied    ats.Suggestion
	ResumeText string
	Analysis   AnalysisView
}

type ProceedResult struct {
	Score       int
	Destination matching.Destination
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, actor Actor) (AnalysisView, error)
	GetAnalysis(ctx context.Context, actor Actor) (AnalysisView, error)
	ApplySuggestion(ctx context.Context, actor Actor, key string) (AppliedSuggestion, error)
	Proceed(ctx context.Context, actor Actor) (ProceedResult, error)
	Preview(role, text string) (AnalysisView, error)
}

type Analysis struct {
	profiles user.ProfileRepository
	analyses repository.AnalysisRepository
	scorer   *ats.Scorer
	logger   *log.Logger
	now      Clock
}

func NewAnalysisUsecase(profiles user.ProfileRepository, analyses repository.AnalysisRepository, scorer *ats.Scorer, logger *log.Logger, now Clock) *Analysis {
	return &Analysis{profiles: profiles, analyses: analyses, scorer: scorer, logger: logger, now: clockOrNow(now)}
}

func newAnalysisView(result ats.AnalysisResult, suggestions ats.SuggestionList) AnalysisView {
	msg := MessageNeedsImprovement
	if result.IsGoodFit() {
		msg = MessageGoodFit
	}
	if suggestions == nil {
		suggestions = ats.SuggestionList{}
	}
	return AnalysisView{Result: result, Suggestions: suggestions, Message: msg}
}

func (u *Analysis) profile(ctx context.Context, actor Actor) (user.Profile, error) {
	p, err := u.profiles.Get(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Analysis) record(ctx context.Context, actor Actor) (repository.AnalysisRecord, error) {
	rec, err := u.analyses.Get(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return repository.AnalysisRecord{}, ErrAnalysisNotFound
		}
		return repository.AnalysisRecord{}, ErrInternal
	}
	return rec, nil
}

// Analyze scores the stored résumé and replaces any earlier suggestions.
func (u *Analysis) Analyze(ctx context.Context, actor Actor) (AnalysisView, error) {
	p, err := u.profile(ctx, actor)
	if err != nil {
		return AnalysisView{}, err
	}

	result := u.scorer.Score(p.TargetRole, p.ResumeText)
	suggestions := ats.GenerateSuggestions(result, p.ResumeText)

	err = u.analyses.Save(ctx, repository.AnalysisRecord{
		UserID:      actor.UserID,
		Result:      result,
		Suggestions: suggestions,
		UpdatedAt:   u.now().UTC(),
	})
	if err != nil {
		return AnalysisView{}, ErrInternal
	}
	logf(u.logger, "[Resume] analyzed user=%s role=%q score=%d suggestions=%d",
		actor.UserID, result.Role, result.Score, len(suggestions))
	return newAnalysisView(result, suggestions), nil
}

func (u *Analysis) GetAnalysis(ctx context.Context, actor Actor) (AnalysisView, error) {
	rec, err := u.record(ctx, actor)
	if err != nil {
		return AnalysisView{}, err
	}
	return newAnalysisView(rec.Result, rec.Suggestions), nil
}

// ApplySuggestion edits the stored résumé text and drops the suggestion.
// The score is not recomputed; Analyze does that on request.
func (u *Analysis) ApplySuggestion(ctx context.Context, actor Actor, rawKey string) (AppliedSuggestion, error) {
	key, ok := ats.ParseSuggestionKey(strings.TrimSpace(rawKey))
	if !ok {
		return AppliedSuggestion{}, ErrSuggestionNotFound
	}
	rec, err := u.record(ctx, actor)
	if err != nil {
		return AppliedSuggestion{}, err
	}
	s, ok := rec.Suggestions.Find(key)
	if !ok {
		return AppliedSuggestion{}, ErrSuggestionNotFound
	}
	p, err := u.profile(ctx, actor)
	if err != nil {
		return AppliedSuggestion{}, err
	}

	text := ats.Apply(s, rec.Result, p.ResumeText)
	remaining, _ := rec.Suggestions.Without(key)
	now := u.now().UTC()

	if text != p.ResumeText {
		if err := u.profiles.UpdateResumeText(ctx, actor.UserID, text, now); err != nil {
			return AppliedSuggestion{}, ErrInternal
		}
	}
	rec.Suggestions = remaining
	rec.UpdatedAt = now
	if err := u.analyses.Save(ctx, rec); err != nil {
		return AppliedSuggestion{}, ErrInternal
	}

	logf(u.logger, "[Resume] applied suggestion user=%s key=%s", actor.UserID, key)
	return AppliedSuggestion{
		Applied:    s,
		ResumeText: text,
		Analysis:   newAnalysisView(rec.Result, remaining),
	}, nil
}

// Proceed records the analyzed score on the profile and picks the next screen.
func (u *Analysis) Proceed(ctx context.Context, actor Actor) (ProceedResult, error) {
	rec, err := u.record(ctx, actor)
	if err != nil {
		return ProceedResult{}, err
	}
	if err := u.profiles.SetATSScore(ctx, actor.UserID, rec.Result.Score, u.now().UTC()); err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return ProceedResult{}, ErrProfileNotFound
		}
		return ProceedResult{}, ErrInternal
	}
	return ProceedResult{Score: rec.Result.Score, Destination: matching.Route(rec.Result.Score)}, nil
}

// Preview scores arbitrary text without touching any stored state.
func (u *Analysis) Preview(role, text string) (AnalysisView, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return AnalysisView{}, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	result := u.scorer.Score(role, text)
	return newAnalysisView(result, ats.GenerateSuggestions(result, text)), nil
}
