package tmdb

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"streampick/models"
)

// Image URLs are expanded at fixed sizes; clients never see bare paths.
const (
	imageBaseURL = "https://image.tmdb.org/t/p/"
	posterSize   = "w500"
	backdropSize = "w780"
)

// rawItem is the superset of the upstream item fields across list and
// detail endpoints for both pools.
type rawItem struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"` // movies
	Name             string            `json:"name"`  // series
	MediaType        string            `json:"media_type,omitempty"`
	Overview         string            `json:"overview"`
	ReleaseDate      string            `json:"release_date"`   // movies
	FirstAirDate     string            `json:"first_air_date"` // series
	PosterPath       string            `json:"poster_path"`
	BackdropPath     string            `json:"backdrop_path"`
	VoteAverage      float64           `json:"vote_average"`
	VoteCount        int               `json:"vote_count"`
	Popularity       float64           `json:"popularity"`
	GenreIDs         []int             `json:"genre_ids"`
	Genres           []models.RawGenre `json:"genres"` // detail endpoints only
	OriginalLanguage string            `json:"original_language"`
	Adult            bool              `json:"adult"`
	Runtime          int               `json:"runtime"`            // movie detail
	EpisodeRunTime   []int             `json:"episode_run_time"`   // series detail
	NumberOfSeasons  int               `json:"number_of_seasons"`  // series detail
	NumberOfEpisodes int               `json:"number_of_episodes"` // series detail
}

type rawPage struct {
	Page         int       `json:"page"`
	Results      []rawItem `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

// genreListEnvelope passes the raw taxonomy through unchanged.
type genreListEnvelope struct {
	Genres []models.RawGenre `json:"genres"`
}

// detailPathPattern matches bare single-item paths like movie/550 or
// tv/1399, with no further segments.
var detailPathPattern = regexp.MustCompile(`^(movie|tv)/[0-9]+$`)

// Transform maps a raw upstream payload into the internal shape, branching
// on the endpoint path. Routing is checked in a fixed order; paths that
// match nothing pass through unmodified.
func Transform(path string, body []byte) (any, error) {
	path = strings.Trim(path, "/")
	switch {
	case strings.Contains(path, "search/multi"):
		return transformPage(body, "")
	case strings.Contains(path, "trending/"):
		return transformPage(body, "")
	case strings.Contains(path, "discover/movie"):
		return transformPage(body, models.MediaTypeMovie)
	case strings.Contains(path, "discover/tv"):
		return transformPage(body, models.MediaTypeSeries)
	case strings.Contains(path, "genre/"):
		var envelope genreListEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decode genre list: %w", err)
		}
		return envelope, nil
	case detailPathPattern.MatchString(path):
		mediaType := models.MediaTypeMovie
		if strings.HasPrefix(path, "tv/") {
			mediaType = models.MediaTypeSeries
		}
		var item rawItem
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("decode %s detail: %w", mediaType, err)
		}
		return mapItem(item, mediaType), nil
	default:
		return json.RawMessage(body), nil
	}
}

// transformPage maps a paginated list payload. mediaType fixes the pool for
// single-pool endpoints; pass "" to infer it per item (search, trending).
// Items that are neither movies nor series (people) are dropped.
func transformPage(body []byte, mediaType string) (models.PagedResults, error) {
	var page rawPage
	if err := json.Unmarshal(body, &page); err != nil {
		return models.PagedResults{}, fmt.Errorf("decode result page: %w", err)
	}

	results := make([]models.MediaItem, 0, len(page.Results))
	for _, item := range page.Results {
		itemType := mediaType
		if itemType == "" {
			itemType = inferMediaType(item)
		}
		if itemType == "" {
			continue
		}
		results = append(results, mapItem(item, itemType))
	}
	return models.PagedResults{
		Page:         page.Page,
		Results:      results,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}, nil
}

// inferMediaType resolves the pool for mixed-type payloads. The upstream
// media_type field wins; otherwise the movie/series-specific title field
// decides. Returns "" for people and other unrecognized entries.
func inferMediaType(item rawItem) string {
	switch item.MediaType {
	case "movie":
		return models.MediaTypeMovie
	case "tv":
		return models.MediaTypeSeries
	case "":
		if item.Title != "" || item.ReleaseDate != "" {
			return models.MediaTypeMovie
		}
		if item.Name != "" || item.FirstAirDate != "" {
			return models.MediaTypeSeries
		}
	}
	return ""
}

// mapItem builds the normalized MediaItem for one upstream record.
func mapItem(item rawItem, mediaType string) models.MediaItem {
	out := models.MediaItem{
		ID:          fmt.Sprintf("%s-%d", mediaType, item.ID),
		SourceID:    item.ID,
		MediaType:   mediaType,
		Overview:    item.Overview,
		PosterURL:   imageURL(item.PosterPath, posterSize),
		BackdropURL: imageURL(item.BackdropPath, backdropSize),
		Rating:      item.VoteAverage,
		VoteCount:   item.VoteCount,
		Popularity:  item.Popularity,
		GenreIDs:    item.GenreIDs,
		Language:    item.OriginalLanguage,
	}
	if len(out.GenreIDs) == 0 && len(item.Genres) > 0 {
		for _, g := range item.Genres {
			out.GenreIDs = append(out.GenreIDs, g.ID)
		}
	}
	if mediaType == models.MediaTypeMovie {
		out.Title = item.Title
		out.ReleaseDate = item.ReleaseDate
		out.Adult = item.Adult
		out.RuntimeMinutes = item.Runtime
	} else {
		out.Title = item.Name
		out.ReleaseDate = item.FirstAirDate
		out.EpisodeRuntimes = item.EpisodeRunTime
		out.SeasonCount = item.NumberOfSeasons
		out.EpisodeCount = item.NumberOfEpisodes
	}
	return out
}

func imageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}
