package matching

import (
	"strconv"
	"strings"
)

// ParseMinSalary reads the lower bound out of a free-text salary range.
// Every character other than digits and '-' is dropped, the remainder is cut
// at the first '-', and the leading token is parsed as an integer.
//
// "$50,000 - $70,000" -> 50000, "Up to $80,000" -> 80000, "$60k" -> 60.
// Returns false when the leading token is empty or not a number, e.g.
// "Negotiable" or "-$5,000". Such postings never pass a salary floor.
func ParseMinSalary(salaryRange string) (int, bool) {
	var b strings.Builder
	b.Grow(len(salaryRange))
	for _, r := range salaryRange {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	lead, _, _ := strings.Cut(b.String(), "-")
	if lead == "" {
		return 0, false
	}
	v, err := strconv.Atoi(lead)
	if err != nil {
		return 0, false
	}
	return v, true
}
