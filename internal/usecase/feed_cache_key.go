package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
)

const (
	feedCachePrefix = "jobs:feed:"
	feedLockPrefix  = "jobs:feed:lock:"
	// FeedCachePattern matches every cached feed page and lock.
	FeedCachePattern = feedCachePrefix + "*"
)

type feedCacheKeyInput struct {
	Search    string `json:"search"`
	Location  string `json:"location"`
	MinSalary *int   `json:"min_salary"`
	Date      string `json:"date"`
}

// FeedCacheKey identifies one filtered feed on one calendar day. The search
// term only ignores case, matching the filter; location stays exact. The
// date is part of the key so entries cannot outlive a posting's deadline.
func FeedCacheKey(c matching.Criteria, today time.Time) string {
	b, _ := json.Marshal(feedCacheKeyInput{
		Search:    strings.ToLower(c.SearchTerm),
		Location:  c.Location,
		MinSalary: c.MinSalary,
		Date:      today.Format(job.DateLayout),
	})
	sum := sha256.Sum256(b)
	return feedCachePrefix + hex.EncodeToString(sum[:])
}

func FeedLockKey(cacheKey string) string {
	return feedLockPrefix + strings.TrimPrefix(cacheKey, feedCachePrefix)
}
