package ats

import "strings"

const (
	keywordSentencePrefix = "\n\nAdded based on suggestion: Key skills include "
	quantifiableSentence  = "\n\nExample of quantifiable achievement: Successfully managed a project that resulted in a 10% cost reduction."
)

// Apply returns text with the suggestion's edit appended. It never re-scores.
// ExpandLength has no automatic edit and returns text unchanged.
func Apply(s Suggestion, analysis AnalysisResult, text string) string {
	switch s.Kind {
	case KindAddKeywords:
		kws := firstN(analysis.MissingKeywords, appliedKeywordCount)
		if len(kws) == 0 {
			return text
		}
		return text + keywordSentencePrefix + strings.Join(kws, ", ") + "."
	case KindAddQuantifiableResult:
		return text + quantifiableSentence
	default:
		return text
	}
}
