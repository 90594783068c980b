package discovery

import (
	"strings"

	"streampick/models"
)

// contentTypeRule names the default pool for a set of unified genre keys.
type contentTypeRule struct {
	mediaType string
	keys      []string
}

// contentTypeLadder is checked in order; the first rule containing any
// selected key wins, independent of how many genres are selected. Some
// genres are so lopsided toward one pool that defaulting to the other
// yields near-empty results. This is a UX default only, always
// user-overridable.
var contentTypeLadder = []contentTypeRule{
	{models.MediaTypeSeries, []string{"kids", "reality"}},
	{models.MediaTypeMovie, []string{"horror", "romance", "thriller"}},
	{models.MediaTypeSeries, []string{"news", "soap", "talk"}},
	{models.MediaTypeMovie, []string{"history", "music", "tvmovie"}},
}

// ChooseContentType picks the default content-pool filter for the selected
// unified genre keys. No selection (surprise-me mode) and selections that
// match no rule both yield "all". There is no error path: the result is
// always one of movie, series, or all.
func ChooseContentType(genreKeys []string) string {
	selected := make(map[string]bool, len(genreKeys))
	for _, key := range genreKeys {
		selected[strings.ToLower(strings.TrimSpace(key))] = true
	}
	for _, rule := range contentTypeLadder {
		for _, key := range rule.keys {
			if selected[key] {
				return rule.mediaType
			}
		}
	}
	return models.MediaTypeAll
}
