package seeder

import (
	"context"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/job"
)

type demoPosting struct {
	Title         string
	Company       string
	Location      string
	Description   string
	SalaryRange   string
	WorkersNeeded int
	// DeadlineDays is relative to the seeding date; 0 means no deadline.
	DeadlineDays int
}

var demoPostings = []demoPosting{
	{"Backend Go Developer", "Gopher Works", "Remote", "Build HTTP services in Go with PostgreSQL and Redis.", "$90,000 - $120,000", 2, 30},
	{"Frontend Engineer", "Pixel Forge", "Austin, TX", "React and TypeScript for a design tools startup.", "$85,000 - $110,000", 1, 21},
	{"Data Analyst", "Numbers Inc.", "Chicago, IL", "SQL reporting, dashboards and stakeholder communication.", "$70,000 - $85,000", 1, 14},
	{"Marketing Coordinator", "Brightline Media", "New York, NY", "Social media campaigns and content calendars.", "$55,000", 1, 10},
	{"Customer Support Lead", "HelpDesk Co.", "Remote", "Lead a team handling customer tickets and escalations.", "Negotiable", 3, 0},
	{"DevOps Engineer", "CloudNine", "Remote", "Kubernetes, Terraform and CI pipelines.", "$100k - $130k", 1, 45},
}

// JobPostingsSeeder inserts demo postings owned by PosterEmail. A posting is
// skipped when one with the same title and company already exists.
type JobPostingsSeeder struct {
	PosterEmail string
	Now         func() time.Time
}

func (JobPostingsSeeder) Name() string { return "job_postings" }

func (s JobPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_postings",
		"id", "title", "company", "location", "description", "salary_range",
		"workers_needed", "application_deadline", "posted_by", "created_at",
	); err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := now()

	return database.InTx(ctx, db, func(tx database.Tx) error {
		var posterID string
		err := tx.QueryRow(ctx, `SELECT id::text FROM users WHERE email = $1`, s.PosterEmail).Scan(&posterID)
		if err != nil {
			return fmt.Errorf("load demo poster %s: %w", s.PosterEmail, err)
		}

		for i, p := range demoPostings {
			var deadline *string
			if p.DeadlineDays > 0 {
				d := today.AddDate(0, 0, p.DeadlineDays).Format(job.DateLayout)
				deadline = &d
			}
			// Stagger created_at so the feed order is stable.
			createdAt := today.Add(-time.Duration(len(demoPostings)-i) * time.Hour)

			_, err := tx.Exec(
				ctx,
				`INSERT INTO job_postings
					(title, company, location, description, salary_range, workers_needed, application_deadline, posted_by, created_at)
				SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::int, $7::date, $8::uuid, $9::timestamptz
				WHERE NOT EXISTS (SELECT 1 FROM job_postings WHERE title = $1::text AND company = $2::text)`,
				p.Title, p.Company, p.Location, p.Description, p.SalaryRange, p.WorkersNeeded, deadline, posterID, createdAt,
			)
			if err != nil {
				return fmt.Errorf("insert %q: %w", p.Title, err)
			}
		}
		return nil
	})
}
