package discovery

import (
	"context"
	"log"
	"time"

	"github.com/sourcegraph/conc/pool"

	"streampick/models"
)

// Discoverer runs one discovery query against one content pool.
type Discoverer interface {
	Discover(ctx context.Context, mediaType string, params models.DiscoveryParams) (models.PagedResults, error)
}

// GenreCatalog supplies the unified genre set used to resolve keys.
type GenreCatalog interface {
	Unified(ctx context.Context) ([]models.UnifiedGenre, error)
}

// rentPurchaseDisclaimer is surfaced whenever no platform filter is active,
// since unfiltered discovery includes rent/purchase-only content.
const rentPurchaseDisclaimer = "Results may include content available only for rent or purchase."

// Result is one recommendation response: the merged item list, the pool
// filter that was applied, and an optional user-facing disclaimer.
type Result struct {
	Items       []models.MediaItem `json:"items"`
	ContentType string             `json:"contentType"`
	Disclaimer  string             `json:"disclaimer,omitempty"`
}

// Service issues the two pool discovery queries and merges their results
// according to the content-type heuristic. Each call derives its own
// parameters; nothing is shared across requests.
type Service struct {
	upstream Discoverer
	genres   GenreCatalog
}

func NewService(upstream Discoverer, genres GenreCatalog) *Service {
	return &Service{upstream: upstream, genres: genres}
}

// Recommend resolves preferences to pool-specific parameters, queries both
// pools in parallel, and merges. typeOverride forces the pool filter when
// the user has overridden the heuristic's default; pass "" to use the
// heuristic. If one pool fails the other's results are still returned; only
// a double failure is an error.
func (s *Service) Recommend(ctx context.Context, prefs models.UserPreferences, providerIDs []int, typeOverride string) (*Result, error) {
	unified, err := s.genres.Unified(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var (
		movieResults, seriesResults models.PagedResults
		movieErr, seriesErr         error
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		params := BuildParams(prefs, unified, providerIDs, models.MediaTypeMovie, now)
		movieResults, movieErr = s.upstream.Discover(ctx, models.MediaTypeMovie, params)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		params := BuildParams(prefs, unified, providerIDs, models.MediaTypeSeries, now)
		seriesResults, seriesErr = s.upstream.Discover(ctx, models.MediaTypeSeries, params)
		return nil
	})
	_ = p.Wait()

	if movieErr != nil && seriesErr != nil {
		return nil, movieErr
	}
	if movieErr != nil {
		log.Printf("[discovery] movie pool query failed, serving series only: %v", movieErr)
	}
	if seriesErr != nil {
		log.Printf("[discovery] series pool query failed, serving movies only: %v", seriesErr)
	}

	contentType := typeOverride
	if contentType == "" {
		contentType = ChooseContentType(prefs.GenreKeys)
	}

	result := &Result{ContentType: contentType}
	if contentType != models.MediaTypeSeries {
		result.Items = append(result.Items, movieResults.Results...)
	}
	if contentType != models.MediaTypeMovie {
		result.Items = append(result.Items, seriesResults.Results...)
	}
	if len(providerIDs) == 0 {
		result.Disclaimer = rentPurchaseDisclaimer
	}
	return result, nil
}
