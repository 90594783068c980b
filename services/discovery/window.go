package discovery

import (
	"time"

	"streampick/models"
)

// Window translates a recency bucket into a concrete release-date range
// anchored to now. Unknown buckets behave like "any": everything since 1900.
func Window(recency string, now time.Time) (from, to time.Time) {
	switch recency {
	case models.RecencyBrandNew:
		return now.AddDate(0, -1, 0), now
	case models.RecencyVeryRecent:
		return now.AddDate(0, -3, 0), now
	case models.RecencyRecent:
		return now.AddDate(0, -6, 0), now
	case models.RecencyContemporary:
		return now.AddDate(-2, 0, 0), now
	default:
		return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), now
	}
}
