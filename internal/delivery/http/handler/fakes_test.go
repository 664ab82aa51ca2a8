package handler

import (
	"context"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
	"career-match/internal/usecase"
)

type fakeAuth struct {
	requested usecase.RequestCodeInput
	err       error
	session   usecase.Session
	pair      jwt.Pair
	refreshed string
}

func (f *fakeAuth) RequestCode(_ context.Context, in usecase.RequestCodeInput) (time.Time, error) {
	f.requested = in
	return time.Date(2026, 3, 10, 12, 10, 0, 0, time.UTC), f.err
}

func (f *fakeAuth) Verify(_ context.Context, _, _ string) (usecase.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Refresh(_ context.Context, token string) (jwt.Pair, error) {
	f.refreshed = token
	return f.pair, f.err
}

type fakeProfileUC struct {
	saved usecase.SaveProfileInput
	actor usecase.Actor
	err   error
}

func (f *fakeProfileUC) SaveProfile(_ context.Context, a usecase.Actor, in usecase.SaveProfileInput) (user.Profile, error) {
	f.actor = a
	f.saved = in
	return user.Profile{UserID: a.UserID, TargetRole: in.Role, ResumeName: in.FileName, ResumeText: string(in.Data)}, f.err
}

func (f *fakeProfileUC) UpdateResumeText(_ context.Context, a usecase.Actor, text string) (user.Profile, error) {
	return user.Profile{UserID: a.UserID, ResumeText: text}, f.err
}

func (f *fakeProfileUC) GetProfile(_ context.Context, a usecase.Actor) (user.Profile, error) {
	f.actor = a
	return user.Profile{UserID: a.UserID}, f.err
}

func (f *fakeProfileUC) ListRoles() []string { return []string{"Software Engineer", "Data Scientist"} }

type fakeAnalysisUC struct {
	key  string
	view usecase.AnalysisView
	err  error
}

func (f *fakeAnalysisUC) Analyze(context.Context, usecase.Actor) (usecase.AnalysisView, error) {
	return f.view, f.err
}

func (f *fakeAnalysisUC) GetAnalysis(context.Context, usecase.Actor) (usecase.AnalysisView, error) {
	return f.view, f.err
}

func (f *fakeAnalysisUC) ApplySuggestion(_ context.Context, _ usecase.Actor, key string) (usecase.AppliedSuggestion, error) {
	f.key = key
	return usecase.AppliedSuggestion{Analysis: f.view}, f.err
}

func (f *fakeAnalysisUC) Proceed(context.Context, usecase.Actor) (usecase.ProceedResult, error) {
	return usecase.ProceedResult{Score: 42, Destination: matching.DestinationSuggestions}, f.err
}

func (f *fakeAnalysisUC) Preview(role, text string) (usecase.AnalysisView, error) {
	return f.view, f.err
}

type fakeFeedUC struct {
	criteria matching.Criteria
	jobs     []job.Posting
	err      error
}

func (f *fakeFeedUC) ListFeed(_ context.Context, c matching.Criteria) ([]job.Posting, error) {
	f.criteria = c
	return f.jobs, f.err
}

func (f *fakeFeedUC) Locations(context.Context) ([]string, error) {
	return []string{"Remote"}, f.err
}

func (f *fakeFeedUC) GetJob(_ context.Context, id string) (job.Posting, error) {
	for _, p := range f.jobs {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, usecase.ErrNotFound
}

type fakePostUC struct {
	posted usecase.PostJobInput
	err    error
	mine   int
}

func (f *fakePostUC) PostJob(_ context.Context, a usecase.Actor, in usecase.PostJobInput) (job.Posting, error) {
	f.posted = in
	if f.err != nil {
		return job.Posting{}, f.err
	}
	return job.Posting{ID: "j-1", Title: in.Title, PostedBy: a.UserID.String()}, nil
}

func (f *fakePostUC) ListMine(context.Context, usecase.Actor) ([]job.Posting, error) {
	f.mine++
	return []job.Posting{}, nil
}

type fakeSuggestUC struct{}

func (fakeSuggestUC) Suggest(context.Context, usecase.Actor) (usecase.SuggestedJobs, error) {
	return usecase.SuggestedJobs{Topic: matching.TopicSupport, Jobs: matching.DefaultCuratedPool()[1:2], LowScore: true}, nil
}

type fakeApplicationUC struct {
	jobID string
	err   error
}

func (f *fakeApplicationUC) Apply(_ context.Context, a usecase.Actor, jobID, coverLetter string) (job.Application, error) {
	f.jobID = jobID
	if f.err != nil {
		return job.Application{}, f.err
	}
	return job.Application{ID: "a-1", JobID: jobID, UserEmail: a.Email, CoverLetter: coverLetter}, nil
}

func (f *fakeApplicationUC) ListMine(context.Context, usecase.Actor) ([]job.Application, error) {
	return nil, f.err
}

func (f *fakeApplicationUC) ListForJob(_ context.Context, _ usecase.Actor, jobID string) ([]job.Application, error) {
	f.jobID = jobID
	return nil, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
