// Package poi fetches points of interest around a coordinate from an
// Overpass-style feature service and classifies them into semantic
// categories.
package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akhil-nair/trip-planner/internal/cache"
	"github.com/akhil-nair/trip-planner/internal/cache/keys"
	"github.com/akhil-nair/trip-planner/internal/model"
	"github.com/akhil-nair/trip-planner/internal/observability"
)

type Aggregator struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	limit   int
	timeout time.Duration

	store    cache.Interface
	storeTTL time.Duration
}

type Option func(*Aggregator)

func WithCache(store cache.Interface, ttl time.Duration) Option {
	return func(a *Aggregator) {
		a.store = store
		a.storeTTL = ttl
	}
}

func WithTimeout(d time.Duration) Option {
	return func(a *Aggregator) { a.timeout = d }
}

// WithLimit caps the number of elements requested from the feature service.
func WithLimit(n int) Option {
	return func(a *Aggregator) { a.limit = n }
}

func New(logger *slog.Logger, client *http.Client, baseURL string, opts ...Option) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Aggregator{
		logger:  logger,
		client:  client,
		baseURL: baseURL,
		limit:   50,
		timeout: 30 * time.Second,
	}
	for _, f := range opts {
		f(a)
	}
	return a
}

type element struct {
	Tags   map[string]string `json:"tags"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

// Fetch queries the feature service for the six tag patterns within radiusM
// meters of coord and buckets the results. Total request failure degrades to
// an empty collection instead of an error: a missing POI feed should thin
// the plan, not fail it.
func (a *Aggregator) Fetch(ctx context.Context, coord model.Coordinate, radiusM int) model.PoiCollection {
	if a.store != nil {
		if col, ok := a.cached(ctx, coord, radiusM); ok {
			return col
		}
	}

	col, err := a.fetch(ctx, coord, radiusM)
	if err != nil {
		a.logger.Warn("poi fetch failed, continuing with empty categories", "err", err)
		return model.PoiCollection{}
	}
	if a.store != nil {
		a.remember(ctx, coord, radiusM, col)
	}
	return col
}

func (a *Aggregator) fetch(ctx context.Context, coord model.Coordinate, radiusM int) (model.PoiCollection, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("data", a.queryText(coord, radiusM))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return model.PoiCollection{}, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	observability.ObserveUpstreamLatency("feature_service", time.Since(start).Seconds())
	if err != nil {
		return model.PoiCollection{}, fmt.Errorf("feature service request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.PoiCollection{}, fmt.Errorf("feature service status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return model.PoiCollection{}, fmt.Errorf("read body: %w", err)
	}

	var parsed overpassResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.PoiCollection{}, fmt.Errorf("decode elements: %w", err)
	}
	return collect(parsed.Elements), nil
}

// queryText renders the six node patterns around the coordinate.
func (a *Aggregator) queryText(coord model.Coordinate, radiusM int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:25];\n(\n")
	for _, p := range []struct{ key, value string }{
		{"tourism", "attraction"},
		{"tourism", "museum"},
		{"tourism", "hotel"},
		{"amenity", "restaurant"},
		{"shop", "supermarket"},
		{"shop", "mall"},
	} {
		fmt.Fprintf(&b, "  node[%q=%q](around:%d,%f,%f);\n", p.key, p.value, radiusM, coord.Lat, coord.Lon)
	}
	fmt.Fprintf(&b, ");\nout center %d;", a.limit)
	return b.String()
}

// collect classifies elements into the four category buckets, dropping
// unnamed elements entirely and preserving coordinate absence.
func collect(elements []element) model.PoiCollection {
	var col model.PoiCollection
	for _, el := range elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		cat, ok := Classify(el.Tags)
		if !ok {
			continue
		}
		p := model.PointOfInterest{Name: name, Coord: coordOf(el), Tags: el.Tags}
		switch cat {
		case model.CategoryAttraction:
			col.Attractions = append(col.Attractions, p)
		case model.CategoryHotel:
			col.Hotels = append(col.Hotels, p)
		case model.CategoryRestaurant:
			col.Restaurants = append(col.Restaurants, p)
		case model.CategoryMarket:
			col.Markets = append(col.Markets, p)
		}
	}
	return col
}

// coordOf prefers a direct position, then the bounding-center. Nil when the
// element has neither.
func coordOf(el element) *model.Coordinate {
	if el.Lat != nil && el.Lon != nil {
		return &model.Coordinate{Lat: *el.Lat, Lon: *el.Lon}
	}
	if el.Center != nil {
		return &model.Coordinate{Lat: el.Center.Lat, Lon: el.Center.Lon}
	}
	return nil
}

func (a *Aggregator) cached(ctx context.Context, coord model.Coordinate, radiusM int) (model.PoiCollection, bool) {
	raw, err := a.store.Get(ctx, keys.PoiKey(coord.Lat, coord.Lon, radiusM, a.limit))
	if err != nil || raw == nil {
		observability.IncCacheMiss()
		return model.PoiCollection{}, false
	}
	var col model.PoiCollection
	if err := json.Unmarshal(raw, &col); err != nil {
		observability.IncCacheMiss()
		return model.PoiCollection{}, false
	}
	observability.IncCacheHit()
	return col, true
}

func (a *Aggregator) remember(ctx context.Context, coord model.Coordinate, radiusM int, col model.PoiCollection) {
	raw, err := json.Marshal(col)
	if err != nil {
		return
	}
	if err := a.store.Set(ctx, keys.PoiKey(coord.Lat, coord.Lon, radiusM, a.limit), raw, a.storeTTL); err != nil {
		a.logger.Debug("poi cache set failed", "err", err)
	}
}
