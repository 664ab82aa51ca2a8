package ats

import (
	"fmt"
	"strconv"
	"strings"
)

type SuggestionKind string

const (
	KindAddKeywords           SuggestionKind = "add_keywords"
	KindAddQuantifiableResult SuggestionKind = "add_quantifiable_result"
	KindExpandLength          SuggestionKind = "expand_length"
)

const (
	quantifiableThreshold = 80
	minWordCount          = 150
	suggestedKeywordCount = 3
	appliedKeywordCount   = 2
	quantifiablePhrase    = "quantifiable results"
)

// SuggestionKey identifies a suggestion by kind and its position in the
// generated list, so two suggestions with identical text stay distinct.
type SuggestionKey struct {
	Kind  SuggestionKind
	Index int
}

func (k SuggestionKey) String() string {
	return fmt.Sprintf("%s-%d", k.Kind, k.Index)
}

func ParseSuggestionKey(s string) (SuggestionKey, bool) {
	i := strings.LastIndexByte(s, '-')
	if i <= 0 || i == len(s)-1 {
		return SuggestionKey{}, false
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil || idx < 0 {
		return SuggestionKey{}, false
	}
	kind := SuggestionKind(s[:i])
	switch kind {
	case KindAddKeywords, KindAddQuantifiableResult, KindExpandLength:
		return SuggestionKey{Kind: kind, Index: idx}, true
	default:
		return SuggestionKey{}, false
	}
}

type Suggestion struct {
	Key      SuggestionKey
	Kind     SuggestionKind
	Text     string
	Keywords []string
}

// GenerateSuggestions emits, in this order and at most once each:
// AddKeywords, AddQuantifiableResult, ExpandLength.
func GenerateSuggestions(analysis AnalysisResult, text string) SuggestionList {
	out := make(SuggestionList, 0, 3)
	add := func(kind SuggestionKind, rendered string, keywords []string) {
		out = append(out, Suggestion{
			Key:      SuggestionKey{Kind: kind, Index: len(out)},
			Kind:     kind,
			Text:     rendered,
			Keywords: keywords,
		})
	}

	if analysis.Score < GoodFitThreshold && len(analysis.MissingKeywords) > 0 {
		kws := firstN(analysis.MissingKeywords, suggestedKeywordCount)
		add(KindAddKeywords, fmt.Sprintf(
			"Consider adding keywords relevant to %s such as: %s.",
			analysis.Role, strings.Join(kws, ", "),
		), kws)
	}

	if !strings.Contains(strings.ToLower(text), quantifiablePhrase) && analysis.Score < quantifiableThreshold {
		add(KindAddQuantifiableResult, "Try to include quantifiable achievements (e.g., 'Increased sales by 15%').", nil)
	}

	if len(strings.Fields(text)) < minWordCount {
		add(KindExpandLength, "Your resume seems a bit short. Ensure you've detailed your experiences adequately.", nil)
	}

	return out
}

type SuggestionList []Suggestion

func (l SuggestionList) Find(key SuggestionKey) (Suggestion, bool) {
	for _, s := range l {
		if s.Key == key {
			return s, true
		}
	}
	return Suggestion{}, false
}

// Without returns a new list lacking key. The receiver is left untouched and
// keys of the remaining entries do not shift.
func (l SuggestionList) Without(key SuggestionKey) (SuggestionList, bool) {
	out := make(SuggestionList, 0, len(l))
	removed := false
	for _, s := range l {
		if s.Key == key {
			removed = true
			continue
		}
		out = append(out, s)
	}
	return out, removed
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
