package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/job"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	GetByID(ctx context.Context, id string) (job.Posting, error)
	// ListAll returns the whole stored corpus in insertion order.
	ListAll(ctx context.Context) ([]job.Posting, error)
	ListByPoster(ctx context.Context, posterID uuid.UUID) ([]job.Posting, error)
	// CreateIfMissing stores p under its own id unless a row already exists.
	CreateIfMissing(ctx context.Context, p job.Posting) error
}

type PostgresJobRepository struct {
	db database.Querier
}

func NewPostgresJobRepository(db database.Querier) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id::text, title, company, location, description, salary_range,
	workers_needed, application_deadline, COALESCE(posted_by::text, ''), created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	var postedBy *uuid.UUID
	if p.PostedBy != "" {
		id, err := uuid.Parse(p.PostedBy)
		if err != nil {
			return job.Posting{}, fmt.Errorf("invalid poster id: %w", err)
		}
		postedBy = &id
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO job_postings
			(id, title, company, location, description, salary_range, workers_needed, application_deadline, posted_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		p.ID, p.Title, p.Company, p.Location, p.Description, p.SalaryRange,
		p.WorkersNeeded, p.ApplicationDeadline, postedBy, p.CreatedAt,
	)
	return scanPosting(row)
}

func (r *PostgresJobRepository) CreateIfMissing(ctx context.Context, p job.Posting) error {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}
	if p.WorkersNeeded < 1 {
		p.WorkersNeeded = 1
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO job_postings
			(id, title, company, location, description, salary_range, workers_needed, application_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		id, p.Title, p.Company, p.Location, p.Description, p.SalaryRange,
		p.WorkersNeeded, p.ApplicationDeadline,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (job.Posting, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return job.Posting{}, ErrJobNotFound
	}
	p, err := scanPosting(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, jobID))
	if errors.Is(err, database.ErrNoRows) {
		return job.Posting{}, ErrJobNotFound
	}
	return p, err
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM job_postings ORDER BY created_at ASC, id ASC`)
}

func (r *PostgresJobRepository) ListByPoster(ctx context.Context, posterID uuid.UUID) ([]job.Posting, error) {
	return r.list(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE posted_by = $1 ORDER BY created_at DESC`,
		posterID,
	)
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var deadline *time.Time
	err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Location, &p.Description, &p.SalaryRange,
		&p.WorkersNeeded, &deadline, &p.PostedBy, &p.CreatedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	p.ApplicationDeadline = deadline
	return p, nil
}
