package models

import "time"

// Recency buckets selectable in the wizard. Each maps to a concrete
// release-date window anchored to "now".
const (
	RecencyBrandNew     = "brand-new"    // last month
	RecencyVeryRecent   = "very-recent"  // last 3 months
	RecencyRecent       = "recent"       // last 6 months
	RecencyContemporary = "contemporary" // last 2 years
	RecencyAny          = "any"
)

// UserPreferences captures the wizard selections for one recommendation
// request. Immutable once discovery begins. An empty GenreKeys means
// surprise-me mode: any genre.
type UserPreferences struct {
	Region    string   `json:"region"` // ISO 3166-1 country code
	GenreKeys []string `json:"genreKeys"`
	Recency   string   `json:"recency"`
}

// DiscoveryParams is the pool-specific parameter set derived from user
// preferences. Recomputed on every preference or platform-filter change,
// never persisted.
type DiscoveryParams struct {
	GenreIDs    []int     `json:"genreIds"`
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	SortBy      string    `json:"sortBy"`
	WatchRegion string    `json:"watchRegion"`
	ProviderIDs []int     `json:"providerIds,omitempty"` // empty = no provider filter
}
