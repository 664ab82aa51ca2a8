package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/mail"
	"time"

	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const codeDigits = 6

type RequestCodeInput struct {
	Email string
	Role  string
}

type Session struct {
	User   user.User
	Tokens jwt.Pair
}

type AuthUsecase interface {
	RequestCode(ctx context.Context, in RequestCodeInput) (time.Time, error)
	Verify(ctx context.Context, email, code string) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error)
}

type AuthConfig struct {
	CodeTTL time.Duration
	DevCode string
}

// Auth signs users in with a one-time code sent to their email. Delivery is
// simulated: the code is written to the log.
type Auth struct {
	users  user.Repository
	codes  repository.VerificationCodeRepository
	jwt    jwt.Service
	cfg    AuthConfig
	logger *log.Logger
	now    Clock
}

func NewAuthUsecase(users user.Repository, codes repository.VerificationCodeRepository, jwtSvc jwt.Service, cfg AuthConfig, logger *log.Logger, now Clock) *Auth {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 10 * time.Minute
	}
	return &Auth{users: users, codes: codes, jwt: jwtSvc, cfg: cfg, logger: logger, now: clockOrNow(now)}
}

func (u *Auth) RequestCode(ctx context.Context, in RequestCodeInput) (time.Time, error) {
	email, err := validEmail(in.Email)
	if err != nil {
		return time.Time{}, err
	}
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: role must be job_seeker or job_poster", ErrInvalidInput)
	}

	code := u.cfg.DevCode
	if code == "" {
		code, err = randomCode(codeDigits)
		if err != nil {
			return time.Time{}, ErrInternal
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return time.Time{}, ErrInternal
	}

	expiresAt := u.now().UTC().Add(u.cfg.CodeTTL)
	err = u.codes.Put(ctx, repository.VerificationCode{
		Email:     email,
		Role:      string(role),
		CodeHash:  string(hash),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		logf(u.logger, "[Auth] store code failed email=%s err=%v", email, err)
		return time.Time{}, ErrInternal
	}

	logf(u.logger, "[Auth] verification code for %s (%s): %s", email, role, code)
	return expiresAt, nil
}

func (u *Auth) Verify(ctx context.Context, email, code string) (Session, error) {
	email, err := validEmail(email)
	if err != nil || code == "" {
		return Session{}, ErrInvalidCode
	}

	pending, err := u.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationCodeNotFound) {
			return Session{}, ErrInvalidCode
		}
		return Session{}, ErrInternal
	}
	if !u.now().Before(pending.ExpiresAt) {
		_ = u.codes.Delete(ctx, email)
		return Session{}, ErrInvalidCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pending.CodeHash), []byte(code)); err != nil {
		return Session{}, ErrInvalidCode
	}
	if err := u.codes.Delete(ctx, email); err != nil {
		return Session{}, ErrInternal
	}

	usr, err := u.users.Upsert(ctx, email, user.Role(pending.Role))
	if err != nil {
		logf(u.logger, "[Auth] upsert user failed email=%s err=%v", email, err)
		return Session{}, ErrInternal
	}
	pair, err := u.jwt.Issue(jwt.Identity{UserID: usr.ID, Email: usr.Email, Role: string(usr.Role)})
	if err != nil {
		return Session{}, ErrInternal
	}
	logf(u.logger, "[Auth] signed in user=%s role=%s", usr.ID, usr.Role)
	return Session{User: usr, Tokens: pair}, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error) {
	if refreshToken == "" {
		return jwt.Pair{}, ErrUnauthorized
	}
	claims, err := u.jwt.Parse(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.Pair{}, ErrRefreshTokenExpired
		}
		return jwt.Pair{}, ErrInvalidRefreshToken
	}

	// Re-read the user so a changed role is reflected in the new tokens.
	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return jwt.Pair{}, ErrInvalidRefreshToken
		}
		return jwt.Pair{}, ErrInternal
	}
	pair, err := u.jwt.Issue(jwt.Identity{UserID: usr.ID, Email: usr.Email, Role: string(usr.Role)})
	if err != nil {
		return jwt.Pair{}, ErrInternal
	}
	return pair, nil
}

func validEmail(raw string) (string, error) {
	email := user.NormalizeEmail(raw)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	return email, nil
}

func randomCode(digits int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
