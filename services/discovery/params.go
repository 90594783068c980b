package discovery

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"streampick/models"
	"streampick/services/genres"
)

const sortByPopularity = "popularity.desc"

// monetizationTypes covers every commercial model a platform filter should
// match. Free/ad-supported is deliberately absent: provider filters are only
// active for paid platforms.
const monetizationTypes = "flatrate|rent|buy"

// BuildParams derives the pool-specific discovery parameters for one content
// pool from the user's preferences. ProviderIDs empty means no platform
// filter; callers must then surface the rent/purchase disclaimer.
func BuildParams(prefs models.UserPreferences, unified []models.UnifiedGenre, providerIDs []int, mediaType string, now time.Time) models.DiscoveryParams {
	from, to := Window(prefs.Recency, now)
	return models.DiscoveryParams{
		GenreIDs:    genres.PoolIDs(unified, prefs.GenreKeys, mediaType),
		DateFrom:    from,
		DateTo:      to,
		SortBy:      sortByPopularity,
		WatchRegion: prefs.Region,
		ProviderIDs: providerIDs,
	}
}

// Query encodes discovery parameters as the upstream query string for the
// given pool. The two pools name their release-date fields differently;
// everything else is shared. Genre and provider ID lists are joined with the
// upstream's OR separator.
func Query(params models.DiscoveryParams, mediaType string) url.Values {
	dateField := "primary_release_date"
	if mediaType == models.MediaTypeSeries {
		dateField = "first_air_date"
	}

	values := url.Values{}
	if len(params.GenreIDs) > 0 {
		values.Set("with_genres", joinIDs(params.GenreIDs))
	}
	values.Set(dateField+".gte", params.DateFrom.Format("2006-01-02"))
	values.Set(dateField+".lte", params.DateTo.Format("2006-01-02"))
	values.Set("sort_by", params.SortBy)
	if params.WatchRegion != "" {
		values.Set("watch_region", params.WatchRegion)
	}
	if len(params.ProviderIDs) > 0 {
		values.Set("with_watch_providers", joinIDs(params.ProviderIDs))
		values.Set("with_watch_monetization_types", monetizationTypes)
	}
	return values
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, "|")
}
