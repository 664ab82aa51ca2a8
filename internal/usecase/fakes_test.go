package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/user"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func seeker() Actor {
	return Actor{UserID: uuid.New(), Email: "seeker@example.com", Role: user.RoleJobSeeker}
}

func poster() Actor {
	return Actor{UserID: uuid.New(), Email: "poster@example.com", Role: user.RoleJobPoster}
}

type fakeUsers struct {
	byEmail map[string]user.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]user.User{}}
}

func (f *fakeUsers) Upsert(_ context.Context, email string, role user.Role) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		u = user.User{ID: uuid.New(), Email: email}
	}
	u.Role = role
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

type fakeCodes struct {
	m map[string]repository.VerificationCode
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{m: map[string]repository.VerificationCode{}}
}

func (f *fakeCodes) Put(_ context.Context, c repository.VerificationCode) error {
	f.m[c.Email] = c
	return nil
}

func (f *fakeCodes) Get(_ context.Context, email string) (repository.VerificationCode, error) {
	c, ok := f.m[email]
	if !ok {
		return repository.VerificationCode{}, repository.ErrVerificationCodeNotFound
	}
	return c, nil
}

func (f *fakeCodes) Delete(_ context.Context, email string) error {
	delete(f.m, email)
	return nil
}

type fakeProfiles struct {
	m   map[uuid.UUID]user.Profile
	err error
}

func newFakeProfiles(ps ...user.Profile) *fakeProfiles {
	f := &fakeProfiles{m: map[uuid.UUID]user.Profile{}}
	for _, p := range ps {
		f.m[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) Get(_ context.Context, id uuid.UUID) (user.Profile, error) {
	if f.err != nil {
		return user.Profile{}, f.err
	}
	p, ok := f.m[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Save(_ context.Context, p user.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.m[p.UserID] = p
	return nil
}

func (f *fakeProfiles) UpdateResumeText(_ context.Context, id uuid.UUID, text string, at time.Time) error {
	p, ok := f.m[id]
	if !ok {
		return user.ErrProfileNotFound
	}
	p.ResumeText = text
	p.UpdatedAt = at
	f.m[id] = p
	return nil
}

func (f *fakeProfiles) SetATSScore(_ context.Context, id uuid.UUID, score int, at time.Time) error {
	p, ok := f.m[id]
	if !ok {
		return user.ErrProfileNotFound
	}
	p.ATSScore = &score
	p.UpdatedAt = at
	f.m[id] = p
	return nil
}

type fakeAnalyses struct {
	m       map[uuid.UUID]repository.AnalysisRecord
	deleted []uuid.UUID
}

func newFakeAnalyses() *fakeAnalyses {
	return &fakeAnalyses{m: map[uuid.UUID]repository.AnalysisRecord{}}
}

func (f *fakeAnalyses) Save(_ context.Context, rec repository.AnalysisRecord) error {
	f.m[rec.UserID] = rec
	return nil
}

func (f *fakeAnalyses) Get(_ context.Context, id uuid.UUID) (repository.AnalysisRecord, error) {
	rec, ok := f.m[id]
	if !ok {
		return repository.AnalysisRecord{}, repository.ErrAnalysisNotFound
	}
	return rec, nil
}

func (f *fakeAnalyses) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.m, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeJobs struct {
	items   []job.Posting
	err     error
	listCnt int
}

func (f *fakeJobs) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	if f.err != nil {
		return job.Posting{}, f.err
	}
	p.ID = uuid.NewString()
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id string) (job.Posting, error) {
	if f.err != nil {
		return job.Posting{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, repository.ErrJobNotFound
}

func (f *fakeJobs) ListAll(context.Context) ([]job.Posting, error) {
	f.listCnt++
	if f.err != nil {
		return nil, f.err
	}
	return append([]job.Posting(nil), f.items...), nil
}

func (f *fakeJobs) ListByPoster(_ context.Context, posterID uuid.UUID) ([]job.Posting, error) {
	out := []job.Posting{}
	for _, p := range f.items {
		if p.PostedBy == posterID.String() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeJobs) CreateIfMissing(_ context.Context, p job.Posting) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.items {
		if existing.ID == p.ID {
			return nil
		}
	}
	f.items = append(f.items, p)
	return nil
}

type fakeApps struct {
	items []job.Application
}

func (f *fakeApps) Create(_ context.Context, a job.Application) (job.Application, error) {
	a.ID = uuid.NewString()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApps) ListByUser(_ context.Context, userID uuid.UUID) ([]job.Application, error) {
	out := []job.Application{}
	for _, a := range f.items {
		if a.UserID == userID.String() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApps) ListByJob(_ context.Context, jobID uuid.UUID) ([]job.Application, error) {
	out := []job.Application{}
	for _, a := range f.items {
		if a.JobID == jobID.String() {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	locks    map[string]bool
	patterns []string
	down     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	delete(f.locks, key)
	return nil
}

func (f *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patterns = append(f.patterns, pattern)
	for k := range f.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(f.data, k)
		}
	}
	return nil
}

func (f *fakeCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down || f.locks[key] {
		return false, nil
	}
	f.locks[key] = true
	return true, nil
}

func (f *fakeCache) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.down
}

func (f *fakeCache) keys(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

type fakeNotifier struct {
	posted []job.Posting
}

func (f *fakeNotifier) JobPosted(p job.Posting) {
	f.posted = append(f.posted, p)
}

type published struct {
	key     string
	payload any
}

type fakePublisher struct {
	events []published
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key string, payload any) error {
	f.events = append(f.events, published{key: key, payload: payload})
	return f.err
}

type fakeStore struct {
	objects map[string][]byte
	err     error
}

func (f *fakeStore) Put(_ context.Context, key, _ string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.objects[key]
	if !ok {
		return nil, errBoom
	}
	return b, nil
}
