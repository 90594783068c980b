package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"streampick/models"
	"streampick/services/discovery"
)

// recommender runs the parallel two-pool discovery and merge.
type recommender interface {
	Recommend(ctx context.Context, prefs models.UserPreferences, providerIDs []int, typeOverride string) (*discovery.Result, error)
}

var _ recommender = (*discovery.Service)(nil)

// RecommendationsHandler turns wizard preferences into a merged
// recommendation list.
type RecommendationsHandler struct {
	Service recommender
}

func NewRecommendationsHandler(service recommender) *RecommendationsHandler {
	return &RecommendationsHandler{Service: service}
}

// List handles GET with query params region, genres (comma-separated
// unified keys), recency, providers (comma-separated provider IDs), and an
// optional type override (movie|series|all). Empty genres means
// surprise-me mode.
func (h *RecommendationsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	region := strings.ToUpper(strings.TrimSpace(query.Get("region")))
	if region != "" {
		if _, err := language.ParseRegion(region); err != nil {
			writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Invalid region: must be an ISO country code"})
			return
		}
	}

	typeOverride := strings.ToLower(strings.TrimSpace(query.Get("type")))
	switch typeOverride {
	case "", models.MediaTypeMovie, models.MediaTypeSeries, models.MediaTypeAll:
	default:
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Invalid type: must be movie, series, or all"})
		return
	}

	prefs := models.UserPreferences{
		Region:    region,
		GenreKeys: splitKeys(query.Get("genres")),
		Recency:   strings.TrimSpace(query.Get("recency")),
	}
	if prefs.Recency == "" {
		prefs.Recency = models.RecencyAny
	}

	result, err := h.Service.Recommend(r.Context(), prefs, splitIDs(query.Get("providers")), typeOverride)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorEnvelope{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// splitKeys parses a comma-separated list of unified genre keys. Keys are
// lowercased; empty entries are dropped.
func splitKeys(raw string) []string {
	var keys []string
	for _, part := range strings.Split(raw, ",") {
		if key := strings.ToLower(strings.TrimSpace(part)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// splitIDs parses a comma-separated list of numeric IDs, skipping anything
// that does not parse.
func splitIDs(raw string) []int {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.Atoi(part); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
