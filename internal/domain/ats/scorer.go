package ats

import (
	"math"
	"strings"
)

// GoodFitThreshold is the score at which a résumé counts as a good fit.
const GoodFitThreshold = 70

type Status string

const (
	StatusGoodFit          Status = "Good Fit"
	StatusNeedsImprovement Status = "Needs Improvement"
)

type AnalysisResult struct {
	Role            string
	Score           int
	MatchedKeywords []string
	MissingKeywords []string
	Status          Status
}

// StatusFor labels a score against GoodFitThreshold.
func StatusFor(score int) Status {
	if score >= GoodFitThreshold {
		return StatusGoodFit
	}
	return StatusNeedsImprovement
}

func (r AnalysisResult) IsGoodFit() bool {
	return r.Status == StatusGoodFit
}

type Scorer struct {
	table *KeywordTable
}

func NewScorer(table *KeywordTable) *Scorer {
	return &Scorer{table: table}
}

func (s *Scorer) Table() *KeywordTable {
	return s.table
}

// Score matches every keyword of role against text by case-insensitive
// substring containment. Matches do not respect word boundaries, so a short
// keyword such as "r" is found inside "career". An unknown role scores 0
// with empty keyword lists.
func (s *Scorer) Score(role, text string) AnalysisResult {
	var keywords []string
	if s != nil {
		keywords = s.table.Keywords(role)
	}

	lower := strings.ToLower(text)
	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}

	score := 0
	if n := len(keywords); n > 0 {
		total := float64(len(matched)) * 100.0 / float64(n)
		score = clampInt(int(math.Round(total)), 0, 100)
	}

	return AnalysisResult{
		Role:            role,
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Status:          StatusFor(score),
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
