package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
)

func newAuth(now time.Time) (*Auth, *fakeUsers, *fakeCodes) {
	users := newFakeUsers()
	codes := newFakeCodes()
	svc := jwt.NewHMACService("a", "r", 15*time.Minute, time.Hour)
	return NewAuthUsecase(users, codes, svc, AuthConfig{CodeTTL: 10 * time.Minute, DevCode: "123456"}, nil, fixedClock(now)), users, codes
}

func TestAuth_RequestCode_Validation(t *testing.T) {
	uc, _, _ := newAuth(time.Now())
	ctx := context.Background()

	cases := []RequestCodeInput{
		{Email: "", Role: "job_seeker"},
		{Email: "not-an-email", Role: "job_seeker"},
		{Email: "a@b.co", Role: "admin"},
	}
	for _, in := range cases {
		if _, err := uc.RequestCode(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestAuth_RequestCodeThenVerify(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	uc, users, codes := newAuth(now)
	ctx := context.Background()

	exp, err := uc.RequestCode(ctx, RequestCodeInput{Email: "  Ana@Example.com ", Role: "Job_Poster"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !exp.Equal(now.Add(10 * time.Minute)) {
		t.Fatalf("unexpected expiry %s", exp)
	}
	stored := codes.m["ana@example.com"]
	if stored.CodeHash == "" || stored.CodeHash == "123456" {
		t.Fatalf("expected hashed code, got %q", stored.CodeHash)
	}

	if _, err := uc.Verify(ctx, "ana@example.com", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for wrong code, got %v", err)
	}

	sess, err := uc.Verify(ctx, "ANA@example.com", "123456")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sess.User.Role != user.RoleJobPoster || sess.User.Email != "ana@example.com" {
		t.Fatalf("unexpected user %+v", sess.User)
	}
	if sess.Tokens.AccessToken == "" || sess.Tokens.RefreshToken == "" {
		t.Fatalf("expected tokens")
	}
	if _, ok := users.byEmail["ana@example.com"]; !ok {
		t.Fatalf("expected user to be stored")
	}

	if _, err := uc.Verify(ctx, "ana@example.com", "123456"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected code to be single use, got %v", err)
	}
}

func TestAuth_VerifyExpiredCode(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	uc, _, codes := newAuth(now)
	ctx := context.Background()

	if _, err := uc.RequestCode(ctx, RequestCodeInput{Email: "a@b.co", Role: "job_seeker"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	uc.now = fixedClock(now.Add(10 * time.Minute))
	if _, err := uc.Verify(ctx, "a@b.co", "123456"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if _, ok := codes.m["a@b.co"]; ok {
		t.Fatalf("expected expired code to be removed")
	}
}

func TestAuth_RandomCodeWhenNoDevCode(t *testing.T) {
	codes := newFakeCodes()
	uc := NewAuthUsecase(newFakeUsers(), codes, jwt.NewHMACService("a", "r", time.Minute, time.Hour), AuthConfig{}, nil, nil)
	if _, err := uc.RequestCode(context.Background(), RequestCodeInput{Email: "a@b.co", Role: "job_seeker"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if uc.cfg.CodeTTL != 10*time.Minute {
		t.Fatalf("expected default ttl, got %s", uc.cfg.CodeTTL)
	}
	code, err := randomCode(6)
	if err != nil || len(code) != 6 {
		t.Fatalf("unexpected code %q err=%v", code, err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	uc, _, _ := newAuth(time.Now())
	ctx := context.Background()

	if _, err := uc.RequestCode(ctx, RequestCodeInput{Email: "a@b.co", Role: "job_seeker"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	sess, err := uc.Verify(ctx, "a@b.co", "123456")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pair, err := uc.Refresh(ctx, sess.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	if _, err := uc.Refresh(ctx, sess.Tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
	if _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
