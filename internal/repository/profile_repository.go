package repository

import (
	"context"
	"errors"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresProfileRepository struct {
	db database.Querier
}

func NewPostgresProfileRepository(db database.Querier) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

var _ user.ProfileRepository = (*PostgresProfileRepository)(nil)

func (r *PostgresProfileRepository) Get(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var p user.Profile
	err := r.db.QueryRow(ctx,
		`SELECT user_id, target_role, resume_name, resume_text, resume_object_key, ats_score, updated_at
		 FROM candidate_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.TargetRole, &p.ResumeName, &p.ResumeText, &p.ResumeObjectKey, &p.ATSScore, &p.UpdatedAt)
	if errors.Is(err, database.ErrNoRows) {
		return user.Profile{}, user.ErrProfileNotFound
	}
	if err != nil {
		return user.Profile{}, err
	}
	return p, nil
}

// Save replaces the whole profile, including any recorded score.
func (r *PostgresProfileRepository) Save(ctx context.Context, p user.Profile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_profiles
			(user_id, target_role, resume_name, resume_text, resume_object_key, ats_score, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			target_role = EXCLUDED.target_role,
			resume_name = EXCLUDED.resume_name,
			resume_text = EXCLUDED.resume_text,
			resume_object_key = EXCLUDED.resume_object_key,
			ats_score = EXCLUDED.ats_score,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.TargetRole, p.ResumeName, p.ResumeText, p.ResumeObjectKey, p.ATSScore, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) UpdateResumeText(ctx context.Context, userID uuid.UUID, text string, at time.Time) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET resume_text = $2, updated_at = $3 WHERE user_id = $1`,
		userID, text, at,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) SetATSScore(ctx context.Context, userID uuid.UUID, score int, at time.Time) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET ats_score = $2, updated_at = $3 WHERE user_id = $1`,
		userID, score, at,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}
