package models

// Media types for the two upstream content pools.
const (
	MediaTypeMovie  = "movie"
	MediaTypeSeries = "series"
	MediaTypeAll    = "all"
)

// MediaItem is the normalized content record the rest of the system consumes.
// It is constructed only by the response transformer and never mutated.
type MediaItem struct {
	ID              string  `json:"id"` // composite, e.g. "movie-550" or "series-1399"
	SourceID        int64   `json:"sourceId"`
	Title           string  `json:"title"`
	MediaType       string  `json:"mediaType"` // movie | series
	Overview        string  `json:"overview"`
	ReleaseDate     string  `json:"releaseDate,omitempty"` // YYYY-MM-DD
	PosterURL       string  `json:"posterUrl,omitempty"`
	BackdropURL     string  `json:"backdropUrl,omitempty"`
	Rating          float64 `json:"rating"`
	VoteCount       int     `json:"voteCount"`
	Popularity      float64 `json:"popularity"`
	GenreIDs        []int   `json:"genreIds,omitempty"`
	Language        string  `json:"language,omitempty"`
	Adult           bool    `json:"adult,omitempty"`           // movies only
	RuntimeMinutes  int     `json:"runtimeMinutes,omitempty"`  // movies only
	EpisodeRuntimes []int   `json:"episodeRuntimes,omitempty"` // series only
	SeasonCount     int     `json:"seasonCount,omitempty"`     // series only
	EpisodeCount    int     `json:"episodeCount,omitempty"`    // series only
}

// PagedResults is the paginated envelope returned by list endpoints.
type PagedResults struct {
	Page         int         `json:"page"`
	Results      []MediaItem `json:"results"`
	TotalPages   int         `json:"totalPages"`
	TotalResults int         `json:"totalResults"`
}
