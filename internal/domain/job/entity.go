package job

import "time"

// DateLayout is the wire format of application deadlines.
const DateLayout = "2006-01-02"

// Posting is a job listing. Postings are never edited or deleted once stored;
// expired ones are filtered out at read time.
type Posting struct {
	ID                  string
	Title               string
	Company             string
	Location            string
	Description         string
	SalaryRange         string
	WorkersNeeded       int
	ApplicationDeadline *time.Time
	PostedBy            string
	CreatedAt           time.Time

	// Skills and CompanyURL are only populated for curated suggestions.
	Skills     []string
	CompanyURL string
}

type Application struct {
	ID          string
	JobID       string
	UserID      string
	JobTitle    string
	Company     string
	UserEmail   string
	CoverLetter string
	ResumeName  string
	SubmittedAt time.Time
}
