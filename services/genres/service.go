package genres

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	"streampick/models"
)

// TaxonomyFetcher retrieves the raw genre list for one content pool.
type TaxonomyFetcher interface {
	GenreList(ctx context.Context, mediaType string) ([]models.RawGenre, error)
}

// Service builds and caches the unified genre set. The upstream taxonomies
// change rarely, so the unified set is derived once and reused until the
// TTL lapses.
type Service struct {
	fetcher TaxonomyFetcher
	tables  Tables
	ttl     time.Duration

	mu        sync.Mutex
	cached    []models.UnifiedGenre
	fetchedAt time.Time
}

func NewService(fetcher TaxonomyFetcher, tables Tables, ttl time.Duration) *Service {
	return &Service{fetcher: fetcher, tables: tables, ttl: ttl}
}

// Unified returns the unified genre set, fetching and rebuilding it when the
// cache is empty or stale. The taxonomy fetch is retried a few times since
// it happens once per session and everything downstream depends on it.
func (s *Service) Unified(ctx context.Context) ([]models.UnifiedGenre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	var movieGenres, seriesGenres []models.RawGenre
	err := retry.Do(
		func() error {
			var err error
			if movieGenres, err = s.fetcher.GenreList(ctx, models.MediaTypeMovie); err != nil {
				return fmt.Errorf("movie taxonomy: %w", err)
			}
			if seriesGenres, err = s.fetcher.GenreList(ctx, models.MediaTypeSeries); err != nil {
				return fmt.Errorf("series taxonomy: %w", err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		// Serve a stale set over failing outright when we have one.
		if s.cached != nil {
			log.Printf("[genres] taxonomy refresh failed, serving stale set: %v", err)
			return s.cached, nil
		}
		return nil, err
	}

	s.cached = Build(movieGenres, seriesGenres, s.tables)
	s.fetchedAt = time.Now()
	log.Printf("[genres] unified %d movie + %d series genres into %d entries",
		len(movieGenres), len(seriesGenres), len(s.cached))
	return s.cached, nil
}
