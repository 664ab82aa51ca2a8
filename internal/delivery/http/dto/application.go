package dto

import (
	"time"

	"career-match/internal/domain/job"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	UserEmail   string    `json:"user_email"`
	CoverLetter string    `json:"cover_letter"`
	ResumeName  string    `json:"resume_name"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewApplicationResponse(a job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		JobTitle:    a.JobTitle,
		Company:     a.Company,
		UserEmail:   a.UserEmail,
		CoverLetter: a.CoverLetter,
		ResumeName:  a.ResumeName,
		SubmittedAt: a.SubmittedAt,
	}
}

func NewApplicationResponses(as []job.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
