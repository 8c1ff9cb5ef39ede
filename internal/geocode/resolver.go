// Package geocode resolves free-text place names to coordinates through an
// ordered fallback chain of gazetteer query variants.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/akhil-nair/trip-planner/internal/cache"
	"github.com/akhil-nair/trip-planner/internal/cache/keys"
	"github.com/akhil-nair/trip-planner/internal/model"
	"github.com/akhil-nair/trip-planner/internal/observability"
)

// ErrUnresolved marks a destination that no query variant could geocode.
// It is distinct from a valid (0,0) coordinate.
var ErrUnresolved = errors.New("destination could not be resolved")

type Resolver struct {
	logger    *slog.Logger
	client    *http.Client
	baseURL   string
	userAgent string
	variants  []string
	timeout   time.Duration

	store    cache.Interface
	storeTTL time.Duration
}

type Option func(*Resolver)

// WithCache caches successful resolutions. Unresolved outcomes are never
// cached so a transient gazetteer outage cannot pin a failure.
func WithCache(store cache.Interface, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.store = store
		r.storeTTL = ttl
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// New builds a resolver. variants are Sprintf patterns with one %s slot for
// the place name, tried in order.
func New(logger *slog.Logger, client *http.Client, baseURL, userAgent string, variants []string, opts ...Option) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{
		logger:    logger,
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
		variants:  variants,
		timeout:   10 * time.Second,
	}
	for _, f := range opts {
		f(r)
	}
	return r
}

type candidate struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type cachedResult struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Display string  `json:"display"`
}

// Resolve tries each query variant in order and returns the first result.
// Per-variant failures (transport, non-2xx, malformed payload, empty result)
// fall through to the next variant; ErrUnresolved is returned only after the
// whole chain is exhausted.
func (r *Resolver) Resolve(ctx context.Context, place string) (model.Coordinate, string, error) {
	if r.store != nil {
		if coord, display, ok := r.cached(ctx, place); ok {
			return coord, display, nil
		}
	}

	for _, variant := range r.variants {
		query := fmt.Sprintf(variant, place)
		coord, display, err := r.lookup(ctx, query)
		if err != nil {
			r.logger.Debug("geocode variant failed", "query", query, "err", err)
			continue
		}
		r.logger.Debug("geocode variant succeeded", "query", query, "display", display)
		if r.store != nil {
			r.remember(ctx, place, coord, display)
		}
		return coord, display, nil
	}
	return model.Coordinate{}, "", ErrUnresolved
}

// lookup issues a single limit-1 gazetteer query.
func (r *Resolver) lookup(ctx context.Context, query string) (model.Coordinate, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return model.Coordinate{}, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	start := time.Now()
	resp, err := r.client.Do(req)
	observability.ObserveUpstreamLatency("gazetteer", time.Since(start).Seconds())
	if err != nil {
		return model.Coordinate{}, "", fmt.Errorf("gazetteer request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Coordinate{}, "", fmt.Errorf("gazetteer status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.Coordinate{}, "", fmt.Errorf("read body: %w", err)
	}

	var cands []candidate
	if err := json.Unmarshal(body, &cands); err != nil {
		return model.Coordinate{}, "", fmt.Errorf("decode candidates: %w", err)
	}
	if len(cands) == 0 {
		return model.Coordinate{}, "", errors.New("no candidates")
	}

	lat, err := strconv.ParseFloat(cands[0].Lat, 64)
	if err != nil {
		return model.Coordinate{}, "", fmt.Errorf("parse lat %q: %w", cands[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(cands[0].Lon, 64)
	if err != nil {
		return model.Coordinate{}, "", fmt.Errorf("parse lon %q: %w", cands[0].Lon, err)
	}
	return model.Coordinate{Lat: lat, Lon: lon}, cands[0].DisplayName, nil
}

func (r *Resolver) cached(ctx context.Context, place string) (model.Coordinate, string, bool) {
	raw, err := r.store.Get(ctx, keys.GeoKey(place))
	if err != nil || raw == nil {
		observability.IncCacheMiss()
		return model.Coordinate{}, "", false
	}
	var res cachedResult
	if err := json.Unmarshal(raw, &res); err != nil {
		observability.IncCacheMiss()
		return model.Coordinate{}, "", false
	}
	observability.IncCacheHit()
	return model.Coordinate{Lat: res.Lat, Lon: res.Lon}, res.Display, true
}

func (r *Resolver) remember(ctx context.Context, place string, coord model.Coordinate, display string) {
	raw, err := json.Marshal(cachedResult{Lat: coord.Lat, Lon: coord.Lon, Display: display})
	if err != nil {
		return
	}
	if err := r.store.Set(ctx, keys.GeoKey(place), raw, r.storeTTL); err != nil {
		r.logger.Debug("geocode cache set failed", "err", err)
	}
}
