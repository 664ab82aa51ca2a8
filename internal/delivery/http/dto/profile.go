package dto

import (
	"time"

	"career-match/internal/domain/user"
)

type ResumeTextRequest struct {
	Text string `json:"text"`
}

type ProfileResponse struct {
	TargetRole   string    `json:"target_role"`
	ResumeName   string    `json:"resume_name"`
	ResumeText   string    `json:"resume_text"`
	ResumeStored bool      `json:"resume_stored"`
	ATSScore     *int      `json:"ats_score"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		TargetRole:   p.TargetRole,
		ResumeName:   p.ResumeName,
		ResumeText:   p.ResumeText,
		ResumeStored: p.ResumeObjectKey != "",
		ATSScore:     p.ATSScore,
		UpdatedAt:    p.UpdatedAt,
	}
}
