package genres

import (
	"sort"
	"strings"

	"streampick/models"
)

// Merge folds the two pool taxonomies into unified genre records carrying
// only native IDs. Movie genres are scanned first, then series genres; each
// incoming genre either joins the first existing entry whose display name it
// matches (AreSimilar) or starts a new entry keyed by its normalized name.
// Merge never fails: an unrecognized genre simply becomes its own entry.
func Merge(movieGenres, seriesGenres []models.RawGenre, tables Tables) []models.UnifiedGenre {
	var unified []models.UnifiedGenre

	appendID := func(ids []int, id int) []int {
		for _, existing := range ids {
			if existing == id {
				return ids
			}
		}
		return append(ids, id)
	}

	add := func(g models.RawGenre, series bool) {
		for i := range unified {
			if AreSimilar(unified[i].DisplayName, g.Name, tables) {
				if series {
					unified[i].SeriesIDs = appendID(unified[i].SeriesIDs, g.ID)
				} else {
					unified[i].MovieIDs = appendID(unified[i].MovieIDs, g.ID)
				}
				return
			}
		}
		entry := models.UnifiedGenre{
			Key:         NormalizeName(g.Name),
			DisplayName: g.Name,
			Emoji:       emojiFor(NormalizeName(g.Name), tables),
		}
		if series {
			entry.SeriesIDs = []int{g.ID}
		} else {
			entry.MovieIDs = []int{g.ID}
		}
		unified = append(unified, entry)
	}

	for _, g := range movieGenres {
		add(g, false)
	}
	for _, g := range seriesGenres {
		add(g, true)
	}
	return unified
}

// ApplyStandIns gives every one-sided entry a stand-in ID on its missing
// side so both pools can always be queried. Concepts without an explicit
// table entry fall back to the generic drama ID.
func ApplyStandIns(unified []models.UnifiedGenre, tables Tables) []models.UnifiedGenre {
	for i := range unified {
		if len(unified[i].MovieIDs) == 0 {
			id, ok := tables.MovieStandIns[unified[i].Key]
			if !ok {
				id = tables.DefaultMovieStandIn
			}
			unified[i].MovieIDs = []int{id}
		}
		if len(unified[i].SeriesIDs) == 0 {
			id, ok := tables.SeriesStandIns[unified[i].Key]
			if !ok {
				id = tables.DefaultSeriesStandIn
			}
			unified[i].SeriesIDs = []int{id}
		}
	}
	return unified
}

// Build runs the full unification pipeline: merge, cross-pool stand-ins,
// and a stable display-name sort for presentation.
func Build(movieGenres, seriesGenres []models.RawGenre, tables Tables) []models.UnifiedGenre {
	unified := ApplyStandIns(Merge(movieGenres, seriesGenres, tables), tables)
	sort.Slice(unified, func(i, j int) bool {
		return unified[i].DisplayName < unified[j].DisplayName
	})
	return unified
}

// emojiFor picks the emoji whose keyword matches the normalized key,
// preferring the longest (most specific) keyword.
func emojiFor(key string, tables Tables) string {
	emoji := tables.DefaultEmoji
	best := 0
	for _, rule := range tables.Emoji {
		if len(rule.keyword) > best && strings.Contains(key, rule.keyword) {
			emoji = rule.emoji
			best = len(rule.keyword)
		}
	}
	return emoji
}
