package matching

import (
	"testing"
	"time"

	"career-match/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(postings []job.Posting) []string {
	out := make([]string, 0, len(postings))
	for _, p := range postings {
		out = append(out, p.ID)
	}
	return out
}

func intPtr(v int) *int { return &v }

func curatedIDs(idx ...int) []string {
	pool := DefaultCuratedPool()
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, pool[i].ID)
	}
	return out
}

var base = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func corpus() []job.Posting {
	return []job.Posting{
		{ID: "old", Title: "Go Developer", Company: "Acme", Location: "Remote", Description: "APIs", SalaryRange: "$50,000 - $70,000", CreatedAt: base.Add(-72 * time.Hour)},
		{ID: "expired", Title: "Go Developer", Company: "Acme", Location: "Remote", SalaryRange: "$90,000", ApplicationDeadline: date(2026, 3, 9), CreatedAt: base.Add(-1 * time.Hour)},
		{ID: "today", Title: "Designer", Company: "Pixel", Location: "Austin, TX", Description: "figma work", SalaryRange: "Negotiable", ApplicationDeadline: date(2026, 3, 10), CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "new", Title: "Support Lead", Company: "GoHelp", Location: "remote", Description: "customers", SalaryRange: "$60k", ApplicationDeadline: date(2026, 4, 1), CreatedAt: base.Add(-30 * time.Minute)},
		{ID: "mid", Title: "Data Analyst", Company: "Numbers", Location: "Remote", Description: "sql and go scripts", SalaryRange: "80000-95000", CreatedAt: base.Add(-24 * time.Hour)},
	}
}

func TestParseMinSalary(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"$50,000 - $70,000", 50000, true},
		{"Up to $80,000", 80000, true},
		{"$60k", 60, true},
		{"80000-95000", 80000, true},
		{"Negotiable", 0, false},
		{"", 0, false},
		{"-$5,000", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMinSalary(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterJobs_ExpiryAndOrder(t *testing.T) {
	got := FilterJobs(corpus(), base, Criteria{})
	assert.Equal(t, []string{"new", "today", "mid", "old"}, ids(got))
	for _, p := range got {
		if p.ApplicationDeadline != nil {
			assert.False(t, p.ApplicationDeadline.Before(*date(2026, 3, 10)))
		}
	}
}

func TestFilterJobs_DeadlineComparesDatesOnly(t *testing.T) {
	lateDeadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p := job.Posting{ID: "x", ApplicationDeadline: &lateDeadline}
	endOfDay := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.Len(t, FilterJobs([]job.Posting{p}, endOfDay, Criteria{}), 1)
	assert.Empty(t, FilterJobs([]job.Posting{p}, endOfDay.Add(time.Second), Criteria{}))
}

func TestFilterJobs_DoesNotMutateCorpus(t *testing.T) {
	c := corpus()
	_ = FilterJobs(c, base, Criteria{SearchTerm: "go"})
	assert.Equal(t, []string{"old", "expired", "today", "new", "mid"}, ids(c))
}

func TestFilterJobs_Search(t *testing.T) {
	got := FilterJobs(corpus(), base, Criteria{SearchTerm: "GO"})
	// title "Go Developer", company "GoHelp", description "go scripts"
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))

	got = FilterJobs(corpus(), base, Criteria{SearchTerm: "figma"})
	assert.Equal(t, []string{"today"}, ids(got))
}

func TestFilterJobs_LocationIsCaseSensitive(t *testing.T) {
	got := FilterJobs(corpus(), base, Criteria{Location: "Remote"})
	assert.Equal(t, []string{"mid", "old"}, ids(got))

	got = FilterJobs(corpus(), base, Criteria{Location: "remote"})
	assert.Equal(t, []string{"new"}, ids(got))
}

func TestFilterJobs_MinSalary(t *testing.T) {
	got := FilterJobs(corpus(), base, Criteria{MinSalary: intPtr(50000)})
	assert.Equal(t, []string{"mid", "old"}, ids(got))

	got = FilterJobs(corpus(), base, Criteria{MinSalary: intPtr(60000)})
	assert.Equal(t, []string{"mid"}, ids(got))

	// "$60k" parses to 60, unparseable "Negotiable" never passes.
	got = FilterJobs(corpus(), base, Criteria{MinSalary: intPtr(0)})
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))
}

func TestFilterJobs_Combined(t *testing.T) {
	got := FilterJobs(corpus(), base, Criteria{SearchTerm: "go", Location: "Remote", MinSalary: intPtr(70000)})
	assert.Equal(t, []string{"mid"}, ids(got))
}

func TestFilterJobs_EqualCreatedAtKeepsCorpusOrder(t *testing.T) {
	c := []job.Posting{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(time.Minute)},
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids(FilterJobs(c, base, Criteria{})))
}

func TestFilterJobs_EmptyCorpus(t *testing.T) {
	got := FilterJobs(nil, base, Criteria{SearchTerm: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLocations(t *testing.T) {
	c := corpus()
	c = append(c, job.Posting{ID: "blank"})
	assert.Equal(t, []string{"Austin, TX", "Remote", "remote"}, Locations(c))
}

func TestDetectSignal(t *testing.T) {
	rules := DefaultTopicRules()

	sig := DetectSignal(rules, "Ran Social Media campaigns and customer calls")
	assert.Equal(t, TopicMarketing, sig.Topic)

	sig = DetectSignal(rules, "Strong communication skills")
	assert.Equal(t, TopicSupport, sig.Topic)
	assert.Equal(t, "support", sig.TitleTerm)

	sig = DetectSignal(rules, "Backend engineer")
	assert.False(t, sig.Detected())
}

func TestSuggestJobs_Marketing(t *testing.T) {
	s := DefaultSuggester()
	got := s.Suggest("I love marketing")
	assert.Equal(t, curatedIDs(0), ids(got))
}

func TestSuggestJobs_SupportMatchesSkillsAndTitle(t *testing.T) {
	s := DefaultSuggester()
	got := s.Suggest("Customer facing, great attention to detail")
	assert.Equal(t, curatedIDs(1, 2), ids(got))
}

func TestSuggestJobs_NoTopicReturnsWholePool(t *testing.T) {
	got := DefaultSuggester().Suggest("kernel hacker")
	assert.Equal(t, curatedIDs(0, 1, 2, 3), ids(got))
}

func TestSuggestJobs_ZeroMatchesFallsBackToFirstTwo(t *testing.T) {
	pool := []job.Posting{
		{ID: "1", Title: "Welder", Skills: []string{"tig"}},
		{ID: "2", Title: "Baker", Skills: []string{"bread"}},
		{ID: "3", Title: "Pilot", Skills: []string{"flying"}},
		{ID: "4", Title: "Driver", Skills: []string{"license"}},
	}
	sig := DetectSignal(DefaultTopicRules(), "marketing")
	require.True(t, sig.Detected())

	got := SuggestJobs(sig, pool)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestSuggestJobs_SmallOrEmptyPool(t *testing.T) {
	sig := CandidateSignal{Topic: TopicSupport, TitleTerm: "support"}
	assert.Equal(t, []string{"only"}, ids(SuggestJobs(sig, []job.Posting{{ID: "only", Title: "Cook"}})))
	assert.Empty(t, SuggestJobs(sig, nil))
}

func TestNewSuggester_Validation(t *testing.T) {
	_, err := NewSuggester([]TopicRule{{Topic: TopicNone, Triggers: []string{"x"}}}, nil)
	require.ErrorIs(t, err, ErrInvalidTopicRule)

	_, err = NewSuggester([]TopicRule{{Topic: TopicSupport, Triggers: []string{" "}}}, nil)
	require.ErrorIs(t, err, ErrInvalidTopicRule)

	s, err := NewSuggester([]TopicRule{{Topic: TopicSupport, Triggers: []string{"HELP"}, TitleTerm: "Support"}}, DefaultCuratedPool())
	require.NoError(t, err)
	assert.Equal(t, curatedIDs(1), ids(s.Suggest("i can help")))
}

func TestRoute(t *testing.T) {
	assert.Equal(t, DestinationSuggestions, Route(0))
	assert.Equal(t, DestinationSuggestions, Route(49))
	assert.Equal(t, DestinationFeed, Route(50))
	assert.Equal(t, DestinationFeed, Route(100))
}
