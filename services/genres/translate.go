package genres

import (
	"sort"

	"streampick/models"
)

// PoolIDs resolves selected unified-genre keys to the deduplicated set of
// IDs for one content pool. Unknown keys are silently ignored so a stale
// client selection never breaks discovery. The result is sorted for
// deterministic query strings.
func PoolIDs(unified []models.UnifiedGenre, keys []string, mediaType string) []int {
	byKey := make(map[string]models.UnifiedGenre, len(unified))
	for _, g := range unified {
		byKey[g.Key] = g
	}

	seen := make(map[int]bool)
	var ids []int
	for _, key := range keys {
		g, ok := byKey[key]
		if !ok {
			continue
		}
		poolIDs := g.MovieIDs
		if mediaType == models.MediaTypeSeries {
			poolIDs = g.SeriesIDs
		}
		for _, id := range poolIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
