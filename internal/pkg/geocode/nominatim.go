package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves coordinates to addresses and back. The tracker uses it
// to fill the snapshot's resolved address; failures degrade to empty values
// rather than failing the caller's operation.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
	Geocode(ctx context.Context, address string) (latitude, longitude float64, err error)
}

// NominatimClient talks to a Nominatim-compatible geocoding endpoint
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewNominatimClient creates a client for the given Nominatim base URL
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "shuttletrack/1.0",
	}
}

// ReverseGeocode resolves a coordinate pair to a display address
func (c *NominatimClient) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s&zoom=18&addressdetails=1",
		c.baseURL,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
	)

	var result struct {
		DisplayName string `json:"display_name"`
	}
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}
	return result.DisplayName, nil
}

// Geocode resolves an address to its best-match coordinates
func (c *NominatimClient) Geocode(ctx context.Context, address string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=1", c.baseURL, url.QueryEscape(address))

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := c.getJSON(ctx, endpoint, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in geocoding result: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in geocoding result: %w", err)
	}
	return lat, lon, nil
}

func (c *NominatimClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	return nil
}

// Noop is a Geocoder that resolves nothing, used when geocoding is disabled
type Noop struct{}

// ReverseGeocode always returns an empty address
func (Noop) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	return "", nil
}

// Geocode always reports no result
func (Noop) Geocode(ctx context.Context, address string) (float64, float64, error) {
	return 0, 0, fmt.Errorf("geocoding disabled")
}
