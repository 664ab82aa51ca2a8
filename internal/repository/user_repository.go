package repository

import (
	"context"
	"errors"

	"career-match/internal/database"
	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db database.Querier
}

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func (r *PostgresUserRepository) Upsert(ctx context.Context, email string, role user.Role) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, role)
		 VALUES (gen_random_uuid(), $1, $2)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, updated_at = now()
		 RETURNING id, email, role, created_at, updated_at`,
		user.NormalizeEmail(email), string(role),
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT id, email, role, created_at, updated_at FROM users WHERE id = $1`, id,
	))
	if errors.Is(err, database.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT id, email, role, created_at, updated_at FROM users WHERE email = $1`,
		user.NormalizeEmail(email),
	))
	if errors.Is(err, database.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
