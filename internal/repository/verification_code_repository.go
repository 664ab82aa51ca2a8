package repository

import (
	"context"
	"errors"
	"time"

	"career-match/internal/database"
)

var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCode is a pending login code. Only its bcrypt hash is stored.
type VerificationCode struct {
	Email     string
	Role      string
	CodeHash  string
	ExpiresAt time.Time
}

type VerificationCodeRepository interface {
	// Put replaces any pending code for the same email.
	Put(ctx context.Context, c VerificationCode) error
	Get(ctx context.Context, email string) (VerificationCode, error)
	Delete(ctx context.Context, email string) error
}

type PostgresVerificationCodeRepository struct {
	db database.Querier
}

func NewPostgresVerificationCodeRepository(db database.Querier) *PostgresVerificationCodeRepository {
	return &PostgresVerificationCodeRepository{db: db}
}

func (r *PostgresVerificationCodeRepository) Put(ctx context.Context, c VerificationCode) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO verification_codes (email, role, code_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (email) DO UPDATE SET
			role = EXCLUDED.role,
			code_hash = EXCLUDED.code_hash,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at`,
		c.Email, c.Role, c.CodeHash, c.ExpiresAt,
	)
	return err
}

func (r *PostgresVerificationCodeRepository) Get(ctx context.Context, email string) (VerificationCode, error) {
	var c VerificationCode
	err := r.db.QueryRow(ctx,
		`SELECT email, role, code_hash, expires_at FROM verification_codes WHERE email = $1`,
		email,
	).Scan(&c.Email, &c.Role, &c.CodeHash, &c.ExpiresAt)
	if errors.Is(err, database.ErrNoRows) {
		return VerificationCode{}, ErrVerificationCodeNotFound
	}
	return c, err
}

func (r *PostgresVerificationCodeRepository) Delete(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE email = $1`, email)
	return err
}
