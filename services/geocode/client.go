package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const defaultBaseURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// Client resolves coordinates to an ISO country code through a free
// reverse-geocoding API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

type reverseGeocodeResponse struct {
	CountryCode string `json:"countryCode"`
}

// CountryCode resolves coordinates to an ISO 3166-1 alpha-2 country code.
// The code is validated before being returned so downstream watch-region
// filters never see garbage.
func (c *Client) CountryCode(ctx context.Context, latitude, longitude float64) (string, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("localityLanguage", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build geocode request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}

	var decoded reverseGeocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode geocode response: %w", err)
	}
	code := strings.ToUpper(strings.TrimSpace(decoded.CountryCode))
	if _, err := language.ParseRegion(code); err != nil {
		return "", fmt.Errorf("invalid country code %q", decoded.CountryCode)
	}
	return code, nil
}
