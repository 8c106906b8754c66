package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// Default public endpoints. Both are fair-use services; heavy callers
// should point the config at their own instances.
const (
	DefaultGeocodeURL = "https://nominatim.openstreetmap.org"
	DefaultRouteURL   = "https://router.project-osrm.org"

	defaultTimeout = 15 * time.Second
	userAgent      = "carbontrack/1.0"
)

// maxResponseBytes caps response bodies read from the remote services.
const maxResponseBytes = 1 << 20

// RoutingProvider implements DistanceProvider over Nominatim geocoding and
// OSRM driving routes.
type RoutingProvider struct {
	client     *http.Client
	geocodeURL string
	routeURL   string
}

// Option configures a RoutingProvider.
type Option func(*RoutingProvider)

// WithHTTPClient overrides the HTTP client (and with it the timeout policy).
func WithHTTPClient(client *http.Client) Option {
	return func(p *RoutingProvider) { p.client = client }
}

// WithEndpoints overrides the geocoding and routing base URLs. Empty values
// keep the defaults.
func WithEndpoints(geocodeURL, routeURL string) Option {
	return func(p *RoutingProvider) {
		if geocodeURL != "" {
			p.geocodeURL = geocodeURL
		}
		if routeURL != "" {
			p.routeURL = routeURL
		}
	}
}

// NewRoutingProvider creates a provider against the default public
// endpoints, with a bounded default timeout.
func NewRoutingProvider(opts ...Option) *RoutingProvider {
	p := &RoutingProvider{
		client:     &http.Client{Timeout: defaultTimeout},
		geocodeURL: DefaultGeocodeURL,
		routeURL:   DefaultRouteURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// coordinate is a lon/lat pair in the order OSRM expects.
type coordinate struct {
	Lon float64
	Lat float64
}

// Distance resolves the driving distance in kilometers between two place
// names. Origin and destination are geocoded concurrently; any failure is
// wrapped in ErrDistanceLookup.
func (p *RoutingProvider) Distance(ctx context.Context, origin, destination string) (float64, error) {
	var from, to coordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := p.geocode(gctx, origin)
		from = c
		return err
	})
	g.Go(func() error {
		c, err := p.geocode(gctx, destination)
		to = c
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return p.route(ctx, from, to)
}

// geocode resolves a place name to coordinates via Nominatim.
func (p *RoutingProvider) geocode(ctx context.Context, place string) (coordinate, error) {
	query := url.Values{
		"q":      {place},
		"format": {"json"},
		"limit":  {"1"},
	}
	endpoint := p.geocodeURL + "/search?" + query.Encode()

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := p.getJSON(ctx, endpoint, &results); err != nil {
		return coordinate{}, fmt.Errorf("%w: geocoding %q: %w", ErrDistanceLookup, place, err)
	}
	if len(results) == 0 {
		return coordinate{}, fmt.Errorf("%w: could not geocode location %q", ErrDistanceLookup, place)
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return coordinate{}, fmt.Errorf("%w: malformed coordinates for %q", ErrDistanceLookup, place)
	}

	return coordinate{Lon: lon, Lat: lat}, nil
}

// route resolves the driving distance between two coordinates via OSRM.
func (p *RoutingProvider) route(ctx context.Context, from, to coordinate) (float64, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.routeURL, from.Lon, from.Lat, to.Lon, to.Lat)

	var response struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"` // meters
		} `json:"routes"`
	}
	if err := p.getJSON(ctx, endpoint, &response); err != nil {
		return 0, fmt.Errorf("%w: routing: %w", ErrDistanceLookup, err)
	}
	if response.Code != "Ok" || len(response.Routes) == 0 {
		return 0, fmt.Errorf("%w: no route found (code %q)", ErrDistanceLookup, response.Code)
	}

	return response.Routes[0].Distance / 1000, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (p *RoutingProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}
