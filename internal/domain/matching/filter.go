package matching

import (
	"sort"
	"strings"
	"time"

	"career-match/internal/domain/job"
)

type Criteria struct {
	SearchTerm string
	Location   string
	MinSalary  *int
}

// FilterJobs narrows corpus to what a job seeker should see at now: expired
// postings are dropped, the rest is ordered newest first, then the search,
// location and salary filters are applied in that order. Filters never
// reorder. corpus is not modified.
func FilterJobs(corpus []job.Posting, now time.Time, c Criteria) []job.Posting {
	out := FilterActive(corpus, now)
	SortNewestFirst(out)
	out = FilterSearch(out, c.SearchTerm)
	out = FilterLocation(out, c.Location)
	if c.MinSalary != nil {
		out = FilterMinSalary(out, *c.MinSalary)
	}
	return out
}

// FilterActive keeps postings without a deadline or whose deadline date is
// not before now's date. Time of day is ignored on both sides.
func FilterActive(postings []job.Posting, now time.Time) []job.Posting {
	today := civilDate(now)
	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if IsActive(p, today) {
			out = append(out, p)
		}
	}
	return out
}

func IsActive(p job.Posting, now time.Time) bool {
	if p.ApplicationDeadline == nil {
		return true
	}
	return !civilDate(*p.ApplicationDeadline).Before(civilDate(now))
}

func SortNewestFirst(postings []job.Posting) {
	sort.SliceStable(postings, func(i, j int) bool {
		return postings[i].CreatedAt.After(postings[j].CreatedAt)
	})
}

func FilterSearch(postings []job.Posting, term string) []job.Posting {
	if term == "" {
		return postings
	}
	term = strings.ToLower(term)
	return keep(postings, func(p job.Posting) bool {
		return strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Company), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	})
}

// FilterLocation is an exact, case-sensitive match.
func FilterLocation(postings []job.Posting, location string) []job.Posting {
	if location == "" {
		return postings
	}
	return keep(postings, func(p job.Posting) bool {
		return p.Location == location
	})
}

func FilterMinSalary(postings []job.Posting, minSalary int) []job.Posting {
	return keep(postings, func(p job.Posting) bool {
		v, ok := ParseMinSalary(p.SalaryRange)
		return ok && v >= minSalary
	})
}

// Locations returns the distinct non-empty locations of postings, sorted.
func Locations(postings []job.Posting) []string {
	seen := make(map[string]struct{}, len(postings))
	out := make([]string, 0, len(postings))
	for _, p := range postings {
		if p.Location == "" {
			continue
		}
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}
	sort.Strings(out)
	return out
}

func keep(postings []job.Posting, pred func(job.Posting) bool) []job.Posting {
	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
