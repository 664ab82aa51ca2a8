package seeder

import (
	"context"

	"career-match/internal/database"
)

type DemoPosterSeeder struct {
	Email string
}

func (DemoPosterSeeder) Name() string { return "demo_poster" }

func (s DemoPosterSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "role"); err != nil {
		return err
	}
	_, err := db.Exec(
		ctx,
		`INSERT INTO users (email, role) VALUES ($1, 'job_poster') ON CONFLICT (email) DO NOTHING`,
		s.Email,
	)
	return err
}
