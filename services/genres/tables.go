package genres

// Mapping tables driving the genre unification logic. These are plain data:
// the merge and fallback functions take a Tables value so the algorithm can
// be tested independently of the table contents.

// Well-known upstream genre IDs referenced by the fallback tables.
const (
	movieGenreAction      = 28
	movieGenreAnimation   = 16
	movieGenreDocumentary = 99
	movieGenreDrama       = 18
	movieGenreRomance     = 10749

	seriesGenreActionAdventure = 10759
	seriesGenreDrama           = 18
	seriesGenreSciFiFantasy    = 10765
	seriesGenreSoap            = 10766
	seriesGenreWarPolitics     = 10768
)

// exclusionPair is a pair of normalized names that must not be merged even
// though one contains the other.
type exclusionPair struct {
	a, b string
}

// synonymPair is a pair of normalized names that denote the same concept
// despite failing both equality and containment.
type synonymPair struct {
	a, b string
}

// emojiRule maps a normalized keyword to an emoji. When several keywords
// match a genre key, the longest keyword wins.
type emojiRule struct {
	keyword string
	emoji   string
}

// Tables bundles every mapping table the unification pipeline consults.
type Tables struct {
	// Exclusions block containment-based merging of near-miss genres that
	// are semantically distinct (Action vs Action & Adventure).
	Exclusions []exclusionPair
	// Synonyms merge clear vendor-taxonomy splits that normalization alone
	// cannot reconcile (Science Fiction vs Sci-Fi & Fantasy).
	Synonyms []synonymPair
	// Emoji assigns a display emoji per normalized keyword.
	Emoji []emojiRule
	// DefaultEmoji is used when no keyword matches.
	DefaultEmoji string
	// SeriesStandIns maps the normalized key of a movie-only concept to a
	// series-pool stand-in ID, so discovery against the series pool still
	// returns something sensible.
	SeriesStandIns map[string]int
	// MovieStandIns is the mirror table for series-only concepts.
	MovieStandIns map[string]int
	// Default stand-in IDs for concepts with no explicit entry.
	DefaultMovieStandIn  int
	DefaultSeriesStandIn int
}

// DefaultTables returns the curated tables for the upstream vendor's current
// movie and TV taxonomies. New vendor genres not covered here are handled
// conservatively: they become their own unified entry with the generic
// drama stand-in on the missing side.
func DefaultTables() Tables {
	return Tables{
		Exclusions: []exclusionPair{
			{"action", "actionadventure"},
			{"adventure", "actionadventure"},
			{"fantasy", "fifantasy"},
			{"war", "warfare"},
		},
		Synonyms: []synonymPair{
			{"sciencefi", "fifantasy"},
			{"warmilitary", "war"},
		},
		Emoji: []emojiRule{
			{"action", "💥"},
			{"adventure", "🗺️"},
			{"animation", "🎨"},
			{"comedy", "😂"},
			{"crime", "🕵️"},
			{"documentary", "🎥"},
			{"drama", "🎭"},
			{"family", "👪"},
			{"fantasy", "🧙"},
			{"fi", "🚀"},
			{"history", "🏛️"},
			{"horror", "👻"},
			{"kids", "🧸"},
			{"music", "🎵"},
			{"mystery", "🔍"},
			{"news", "📰"},
			{"reality", "📹"},
			{"romance", "💕"},
			{"soap", "🧼"},
			{"talk", "🎤"},
			{"thriller", "😱"},
			{"tvmovie", "📺"},
			{"war", "⚔️"},
			{"western", "🤠"},
		},
		DefaultEmoji: "🎬",
		SeriesStandIns: map[string]int{
			"adventure": seriesGenreActionAdventure,
			"fantasy":   seriesGenreSciFiFantasy,
			"history":   seriesGenreWarPolitics,
			"romance":   seriesGenreSoap,
			"tvmovie":   seriesGenreActionAdventure,
		},
		MovieStandIns: map[string]int{
			"actionadventure": movieGenreAction,
			"kids":            movieGenreAnimation,
			"news":            movieGenreDocumentary,
			"reality":         movieGenreDocumentary,
			"soap":            movieGenreRomance,
		},
		DefaultMovieStandIn:  movieGenreDrama,
		DefaultSeriesStandIn: seriesGenreDrama,
	}
}
