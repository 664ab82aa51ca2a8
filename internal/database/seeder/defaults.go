package seeder

import "time"

// DemoPosterEmail owns every seeded posting.
const DemoPosterEmail = "demo-poster@career-match.local"

func Defaults(now func() time.Time) []Seeder {
	return []Seeder{
		DemoPosterSeeder{Email: DemoPosterEmail},
		JobPostingsSeeder{PosterEmail: DemoPosterEmail, Now: now},
	}
}
