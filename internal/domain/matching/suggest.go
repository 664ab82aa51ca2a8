package matching

import (
	"errors"
	"fmt"
	"strings"

	"career-match/internal/domain/job"
)

type Topic string

const (
	TopicNone      Topic = ""
	TopicMarketing Topic = "marketing"
	TopicSupport   Topic = "support"
)

// FallbackSize is how many curated postings are shown when nothing matches.
const FallbackSize = 2

var ErrInvalidTopicRule = errors.New("invalid topic rule")

// TopicRule flags a résumé as belonging to Topic when it mentions any of
// Triggers. A curated posting then matches when its title contains TitleTerm.
type TopicRule struct {
	Topic     Topic
	Triggers  []string
	TitleTerm string
}

// CandidateSignal is a coarse reading of a résumé, enough to pick a subset
// of curated postings. It is not a classifier.
type CandidateSignal struct {
	Topic      Topic
	TitleTerm  string
	ResumeText string
}

func (s CandidateSignal) Detected() bool {
	return s.Topic != TopicNone
}

// DetectSignal returns the first rule, in order, with a trigger found in text.
func DetectSignal(rules []TopicRule, text string) CandidateSignal {
	lower := strings.ToLower(text)
	sig := CandidateSignal{ResumeText: lower}
	for _, r := range rules {
		for _, tr := range r.Triggers {
			if strings.Contains(lower, tr) {
				sig.Topic = r.Topic
				sig.TitleTerm = r.TitleTerm
				return sig
			}
		}
	}
	return sig
}

// SuggestJobs picks curated postings for a candidate. With a detected topic a
// posting matches when one of its skills appears in the résumé or its title
// contains the topic's title term. Without a topic the pool is returned as is.
// If nothing matches, the first FallbackSize postings are returned instead, so
// a non-empty pool never yields an empty suggestion list.
func SuggestJobs(signal CandidateSignal, pool []job.Posting) []job.Posting {
	if len(pool) == 0 {
		return []job.Posting{}
	}
	if !signal.Detected() {
		return append([]job.Posting(nil), pool...)
	}

	out := keep(pool, func(p job.Posting) bool {
		if signal.TitleTerm != "" && strings.Contains(strings.ToLower(p.Title), signal.TitleTerm) {
			return true
		}
		for _, s := range p.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" && strings.Contains(signal.ResumeText, s) {
				return true
			}
		}
		return false
	})
	if len(out) > 0 {
		return out
	}

	n := FallbackSize
	if len(pool) < n {
		n = len(pool)
	}
	return append([]job.Posting(nil), pool[:n]...)
}

// Suggester bundles the topic rules with the curated pool they select from.
type Suggester struct {
	rules []TopicRule
	pool  []job.Posting
}

func NewSuggester(rules []TopicRule, pool []job.Posting) (*Suggester, error) {
	rs := make([]TopicRule, 0, len(rules))
	for i, r := range rules {
		if r.Topic == TopicNone {
			return nil, fmt.Errorf("%w: rule %d has no topic", ErrInvalidTopicRule, i)
		}
		triggers := make([]string, 0, len(r.Triggers))
		for _, t := range r.Triggers {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				triggers = append(triggers, t)
			}
		}
		if len(triggers) == 0 {
			return nil, fmt.Errorf("%w: %s has no triggers", ErrInvalidTopicRule, r.Topic)
		}
		rs = append(rs, TopicRule{
			Topic:     r.Topic,
			Triggers:  triggers,
			TitleTerm: strings.ToLower(strings.TrimSpace(r.TitleTerm)),
		})
	}
	return &Suggester{rules: rs, pool: append([]job.Posting(nil), pool...)}, nil
}

func (s *Suggester) Signal(resumeText string) CandidateSignal {
	return DetectSignal(s.rules, resumeText)
}

func (s *Suggester) Suggest(resumeText string) []job.Posting {
	return SuggestJobs(s.Signal(resumeText), s.pool)
}

func (s *Suggester) Pool() []job.Posting {
	return append([]job.Posting(nil), s.pool...)
}

func DefaultTopicRules() []TopicRule {
	return []TopicRule{
		{Topic: TopicMarketing, Triggers: []string{"marketing", "social media"}, TitleTerm: "marketing"},
		{Topic: TopicSupport, Triggers: []string{"customer", "communication"}, TitleTerm: "support"},
	}
}

// DefaultCuratedPool has fixed UUIDs so a suggested posting can be stored
// in job_postings the first time someone applies to it.
func DefaultCuratedPool() []job.Posting {
	return []job.Posting{
		{
			ID:         "5c0e7a52-3f1d-4b6e-9a0c-000000000101",
			Title:      "Junior Marketing Assistant",
			Company:    "Creative Solutions Ltd.",
			Location:   "Remote",
			Skills:     []string{"social media", "content creation", "seo basics"},
			CompanyURL: "https://example.com/creative-solutions",
		},
		{
			ID:         "5c0e7a52-3f1d-4b6e-9a0c-000000000102",
			Title:      "Customer Support Specialist",
			Company:    "SupportPro Inc.",
			Location:   "New York, NY",
			Skills:     []string{"communication", "problem-solving", "crm software"},
			CompanyURL: "https://example.com/supportpro",
		},
		{
			ID:         "5c0e7a52-3f1d-4b6e-9a0c-000000000103",
			Title:      "Data Entry Clerk",
			Company:    "DataFlow Corp.",
			Location:   "Chicago, IL",
			Skills:     []string{"typing speed", "attention to detail", "microsoft excel"},
			CompanyURL: "https://example.com/dataflow",
		},
		{
			ID:         "5c0e7a52-3f1d-4b6e-9a0c-000000000104",
			Title:      "Administrative Assistant",
			Company:    "Office Helpers Co.",
			Location:   "Austin, TX",
			Skills:     []string{"organization", "scheduling", "microsoft office"},
			CompanyURL: "https://example.com/office-helpers",
		},
	}
}

func DefaultSuggester() *Suggester {
	s, err := NewSuggester(DefaultTopicRules(), DefaultCuratedPool())
	if err != nil {
		panic(err)
	}
	return s
}
