// Package planner orchestrates the trip-planning pipeline: validate,
// resolve, aggregate, synthesize, assemble.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akhil-nair/trip-planner/internal/geocode"
	"github.com/akhil-nair/trip-planner/internal/itinerary"
	"github.com/akhil-nair/trip-planner/internal/model"
	"github.com/akhil-nair/trip-planner/internal/observability"
	"github.com/akhil-nair/trip-planner/internal/travel"
)

// ErrUnresolved is the terminal failure for a destination no gazetteer
// variant could geocode.
var ErrUnresolved = errors.New("could not resolve destination")

// ValidationError names the missing required trip field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// GeoResolver resolves a place name to a coordinate pair and display name.
type GeoResolver interface {
	Resolve(ctx context.Context, place string) (model.Coordinate, string, error)
}

// PoiFetcher aggregates classified POIs around a coordinate. It degrades to
// an empty collection instead of failing.
type PoiFetcher interface {
	Fetch(ctx context.Context, coord model.Coordinate, radiusM int) model.PoiCollection
}

type Planner struct {
	logger   *slog.Logger
	resolver GeoResolver
	pois     PoiFetcher
	radiusM  int

	now       func() time.Time
	newTripID func() string
}

func New(logger *slog.Logger, resolver GeoResolver, pois PoiFetcher, radiusM int) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	if radiusM <= 0 {
		radiusM = 5000
	}
	return &Planner{
		logger:    logger,
		resolver:  resolver,
		pois:      pois,
		radiusM:   radiusM,
		now:       time.Now,
		newTripID: newTripID,
	}
}

// Plan runs one end-to-end planning request. Validation and resolution
// failures are terminal; POI unavailability degrades the plan instead.
func (p *Planner) Plan(ctx context.Context, req model.TripRequest) (model.TripPlan, error) {
	if err := validate(req); err != nil {
		observability.IncPlan("validation_error")
		return model.TripPlan{}, err
	}

	days := req.Days
	persons := req.Persons
	if persons <= 0 {
		persons = 1
	}

	start := p.parseStartDate(req.StartDate)

	coord, display, err := p.resolver.Resolve(ctx, req.Destination)
	if err != nil {
		if errors.Is(err, geocode.ErrUnresolved) {
			observability.IncPlan("unresolved")
			p.logger.Info("destination unresolved", "destination", req.Destination)
			return model.TripPlan{}, ErrUnresolved
		}
		observability.IncPlan("unresolved")
		return model.TripPlan{}, fmt.Errorf("resolve destination: %w", err)
	}

	pois := p.pois.Fetch(ctx, coord, p.radiusM)

	// itinerary and travel legs derive independently from the resolved POIs
	itin := itinerary.Synthesize(pois.Attractions, days, start, req.Destination, display)
	legs := travel.Legs(pois.Attractions)
	cost := itinerary.EstimateCost(days, persons)

	plan := model.TripPlan{
		TripID:             p.newTripID(),
		Destination:        req.Destination,
		DestinationDisplay: display,
		Currency:           itinerary.Currency,
		EstimatedCost:      cost.Total,
		CostBreakdown:      cost,
		Attractions:        model.Views(pois.Attractions),
		Hotels:             model.Views(pois.Hotels),
		Restaurants:        model.Views(pois.Restaurants),
		Markets:            model.Views(pois.Markets),
		PlanSkeleton:       itinerary.Skeleton(days, req.Destination),
		Itinerary:          itin,
		TravelDetails:      legs,
		TravelEstimates:    itinerary.TravelEstimates(days),
		PackingList:        itinerary.PackingList(),
		BookingChecklist:   itinerary.BookingChecklist(),
	}

	observability.IncPlan("ok")
	p.logger.Info("trip planned",
		"trip_id", plan.TripID,
		"destination", req.Destination,
		"days", days,
		"attractions", len(pois.Attractions),
		"legs", len(legs))
	return plan, nil
}

func validate(req model.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return &ValidationError{Field: "destination"}
	}
	if strings.TrimSpace(req.StartDate) == "" {
		return &ValidationError{Field: "start_date"}
	}
	if req.Days <= 0 {
		return &ValidationError{Field: "days"}
	}
	return nil
}

// parseStartDate accepts an ISO date or datetime; anything unparsable
// silently falls back to the current date.
func (p *Planner) parseStartDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return p.now()
}

func newTripID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "trip_" + hex[:8]
}
