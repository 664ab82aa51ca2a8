package dto

import (
	"career-match/internal/domain/ats"
	"career-match/internal/usecase"
)

type PreviewRequest struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type SuggestionResponse struct {
	Key      string   `json:"key"`
	Kind     string   `json:"kind"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

type AnalysisResponse struct {
	Role            string               `json:"role"`
	Score           int                  `json:"score"`
	Status          string               `json:"status"`
	MatchedKeywords []string             `json:"matched_keywords"`
	MissingKeywords []string             `json:"missing_keywords"`
	Message         string               `json:"message"`
	Suggestions     []SuggestionResponse `json:"suggestions"`
}

type AppliedSuggestionResponse struct {
	Applied    SuggestionResponse `json:"applied"`
	ResumeText string             `json:"resume_text"`
	Analysis   AnalysisResponse   `json:"analysis"`
}

type ProceedResponse struct {
	Score       int    `json:"score"`
	Destination string `json:"destination"`
}

func NewSuggestionResponse(s ats.Suggestion) SuggestionResponse {
	kw := s.Keywords
	if kw == nil {
		kw = []string{}
	}
	return SuggestionResponse{Key: s.Key.String(), Kind: string(s.Kind), Text: s.Text, Keywords: kw}
}

func NewAnalysisResponse(v usecase.AnalysisView) AnalysisResponse {
	out := AnalysisResponse{
		Role:            v.Result.Role,
		Score:           v.Result.Score,
		Status:          string(v.Result.Status),
		MatchedKeywords: nonNil(v.Result.MatchedKeywords),
		MissingKeywords: nonNil(v.Result.MissingKeywords),
		Message:         v.Message,
		Suggestions:     make([]SuggestionResponse, 0, len(v.Suggestions)),
	}
	for _, s := range v.Suggestions {
		out.Suggestions = append(out.Suggestions, NewSuggestionResponse(s))
	}
	return out
}

func NewAppliedSuggestionResponse(a usecase.AppliedSuggestion) AppliedSuggestionResponse {
	return AppliedSuggestionResponse{
		Applied:    NewSuggestionResponse(a.Applied),
		ResumeText: a.ResumeText,
		Analysis:   NewAnalysisResponse(a.Analysis),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
