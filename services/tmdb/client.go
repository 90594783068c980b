package tmdb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"streampick/models"
	"streampick/services/discovery"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// taxonomyTTLMultiplier lengthens the cache TTL for genre taxonomies, which
// change far less often than content metadata.
const taxonomyTTLMultiplier = 7

// Client talks to the upstream metadata vendor. Every call is a single
// attempt; retry policy belongs to callers that can afford it.
type Client struct {
	baseURL    string
	token      string
	httpc      *http.Client
	genreCache *fileCache
}

func NewClient(baseURL, token string, httpc *http.Client, cacheDir string, ttlHours int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	ttl := time.Duration(ttlHours) * time.Hour
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpc:      httpc,
		genreCache: newFileCache(filepath.Join(cacheDir, "tmdb", "genres"), ttl*taxonomyTTLMultiplier),
	}
}

// HasToken reports whether the bearer credential is configured.
func (c *Client) HasToken() bool { return c.token != "" }

// Get performs one upstream call, forwarding rawQuery unmodified, and
// returns the upstream status and body. Transport failures come back as
// *UpstreamError with ClassNetwork; non-OK statuses are returned as data so
// the proxy boundary can apply per-endpoint semantics.
func (c *Client) Get(ctx context.Context, path, rawQuery string) (int, []byte, error) {
	if c.token == "" {
		return 0, nil, ErrMissingToken
	}
	target := c.baseURL + "/" + strings.Trim(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, &UpstreamError{Class: ClassNetwork, Body: err.Error()}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &UpstreamError{Class: ClassNetwork, Body: err.Error()}
	}
	return resp.StatusCode, body, nil
}

// getOK is Get plus classification: any non-OK status becomes *UpstreamError.
func (c *Client) getOK(ctx context.Context, path string, query url.Values) ([]byte, error) {
	status, body, err := c.Get(ctx, path, query.Encode())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &UpstreamError{Class: classify(status), Status: status, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// GenreList fetches the raw genre taxonomy for one pool, served from the
// long-TTL cache when possible.
func (c *Client) GenreList(ctx context.Context, mediaType string) ([]models.RawGenre, error) {
	pool := "movie"
	if mediaType == models.MediaTypeSeries {
		pool = "tv"
	}
	key := cacheKey("genres", pool)
	var cached []models.RawGenre
	if c.genreCache.get(key, &cached) {
		return cached, nil
	}

	body, err := c.getOK(ctx, "genre/"+pool+"/list", url.Values{})
	if err != nil {
		return nil, err
	}
	var envelope genreListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s taxonomy: %w", pool, err)
	}
	if err := c.genreCache.set(key, envelope.Genres); err != nil {
		// Cache misses are survivable; the next call just refetches.
		return envelope.Genres, nil
	}
	return envelope.Genres, nil
}

// Discover runs one discovery query against one pool and returns the
// normalized result page. Results are never cached: parameters change with
// every preference tweak.
func (c *Client) Discover(ctx context.Context, mediaType string, params models.DiscoveryParams) (models.PagedResults, error) {
	pool := "movie"
	if mediaType == models.MediaTypeSeries {
		pool = "tv"
	}
	body, err := c.getOK(ctx, "discover/"+pool, discovery.Query(params, mediaType))
	if err != nil {
		return models.PagedResults{}, err
	}
	return transformPage(body, mediaType)
}

func cacheKey(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
