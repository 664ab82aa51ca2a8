package seeder

import (
	"context"

	"career-match/internal/database"
)

// Seeder inserts fixture rows. Run must be idempotent: seeding twice leaves
// the same data as seeding once.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
