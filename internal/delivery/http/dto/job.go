package dto

import (
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/usecase"
)

type PostJobRequest struct {
	Title               string `json:"title"`
	Company             string `json:"company"`
	Location            string `json:"location"`
	Description         string `json:"description"`
	SalaryRange         string `json:"salary_range"`
	WorkersNeeded       int    `json:"workers_needed"`
	ApplicationDeadline string `json:"application_deadline"`
}

func (r PostJobRequest) Input() usecase.PostJobInput {
	return usecase.PostJobInput{
		Title:               r.Title,
		Company:             r.Company,
		Location:            r.Location,
		Description:         r.Description,
		SalaryRange:         r.SalaryRange,
		WorkersNeeded:       r.WorkersNeeded,
		ApplicationDeadline: r.ApplicationDeadline,
	}
}

type JobResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Description         string    `json:"description"`
	SalaryRange         string    `json:"salary_range"`
	WorkersNeeded       int       `json:"workers_needed"`
	ApplicationDeadline *string   `json:"application_deadline"`
	PostedBy            string    `json:"posted_by,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type SuggestedJobResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	CompanyURL string   `json:"company_url"`
}

type SuggestionsResponse struct {
	Topic    string                 `json:"topic"`
	LowScore bool                   `json:"low_score"`
	Jobs     []SuggestedJobResponse `json:"jobs"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

func NewJobResponse(p job.Posting) JobResponse {
	out := JobResponse{
		ID:            p.ID,
		Title:         p.Title,
		Company:       p.Company,
		Location:      p.Location,
		Description:   p.Description,
		SalaryRange:   p.SalaryRange,
		WorkersNeeded: p.WorkersNeeded,
		PostedBy:      p.PostedBy,
		CreatedAt:     p.CreatedAt,
	}
	if p.ApplicationDeadline != nil {
		d := p.ApplicationDeadline.Format(job.DateLayout)
		out.ApplicationDeadline = &d
	}
	return out
}

func NewJobResponses(ps []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewJobResponse(p))
	}
	return out
}

func NewSuggestionsResponse(s usecase.SuggestedJobs) SuggestionsResponse {
	out := SuggestionsResponse{
		Topic:    string(s.Topic),
		LowScore: s.LowScore,
		Jobs:     make([]SuggestedJobResponse, 0, len(s.Jobs)),
	}
	for _, p := range s.Jobs {
		out.Jobs = append(out.Jobs, SuggestedJobResponse{
			ID:         p.ID,
			Title:      p.Title,
			Company:    p.Company,
			Location:   p.Location,
			Skills:     nonNil(p.Skills),
			CompanyURL: p.CompanyURL,
		})
	}
	return out
}
