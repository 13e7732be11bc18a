package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultNominatimURL is the public OpenStreetMap search endpoint
	DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"
	userAgent           = "EcoWatchTerminal/1.0" // Required by Nominatim ToS
)

// Geocoder converts place names to coordinates
type Geocoder struct {
	baseURL     string
	httpClient  *http.Client
	minInterval time.Duration
	logger      *zap.Logger
	lastCall    time.Time
	mu          sync.Mutex
}

// Location represents a geocoded location
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// NewGeocoder creates a new geocoder. An empty baseURL uses the public Nominatim instance.
func NewGeocoder(baseURL string, logger *zap.Logger) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Geocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		minInterval: time.Second,
		logger:      logger,
	}
}

// nominatimResponse represents the Nominatim API response
type nominatimResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

var coordPattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

// parseCoordinates accepts "lat, lng" queries without a network round trip
func parseCoordinates(s string) (*Location, bool) {
	m := coordPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, false
	}
	return &Location{
		Latitude:  lat,
		Longitude: lng,
		Name:      fmt.Sprintf("Zona %.6f, %.6f", lat, lng),
	}, true
}

// wait reserves the next request slot and blocks until it arrives or ctx ends.
// The lock is held only while reserving.
func (g *Geocoder) wait(ctx context.Context) error {
	g.mu.Lock()
	now := time.Now()
	slot := now
	if !g.lastCall.IsZero() {
		if next := g.lastCall.Add(g.minInterval); next.After(now) {
			slot = next
		}
	}
	g.lastCall = slot
	g.mu.Unlock()

	delay := slot.Sub(now)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Geocode converts a query (place name or "lat, lng") to coordinates
func (g *Geocoder) Geocode(ctx context.Context, query string) (*Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	if loc, ok := parseCoordinates(query); ok {
		return loc, nil
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("q", query)
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	// Rate limiting: Nominatim requires 1 req/sec max
	if err := g.wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Set required User-Agent header (Nominatim ToS requirement)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim API returned status %d", resp.StatusCode)
	}

	var results []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no results found for '%s'", query)
	}

	result := results[0]

	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude: %w", err)
	}

	g.logger.Debug("geocoded location", zap.String("query", query), zap.String("name", result.DisplayName))

	return &Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      result.DisplayName,
	}, nil
}
