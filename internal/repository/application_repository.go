package repository

import (
	"context"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a job.Application) (job.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Application, error)
}

type PostgresApplicationRepository struct {
	db database.Querier
}

func NewPostgresApplicationRepository(db database.Querier) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id::text, job_id::text, user_id::text, job_title, company,
	user_email, cover_letter, resume_name, submitted_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a job.Application) (job.Application, error) {
	jobID, err := uuid.Parse(a.JobID)
	if err != nil {
		return job.Application{}, fmt.Errorf("invalid job id: %w", err)
	}
	userID, err := uuid.Parse(a.UserID)
	if err != nil {
		return job.Application{}, fmt.Errorf("invalid user id: %w", err)
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO applications
			(id, job_id, user_id, job_title, company, user_email, cover_letter, resume_name, submitted_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+applicationColumns,
		jobID, userID, a.JobTitle, a.Company, a.UserEmail, a.CoverLetter, a.ResumeName, a.SubmittedAt,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 ORDER BY submitted_at DESC`,
		userID,
	)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY submitted_at DESC`,
		jobID,
	)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]job.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (job.Application, error) {
	var a job.Application
	err := row.Scan(
		&a.ID, &a.JobID, &a.UserID, &a.JobTitle, &a.Company,
		&a.UserEmail, &a.CoverLetter, &a.ResumeName, &a.SubmittedAt,
	)
	return a, err
}
