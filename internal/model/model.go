// Package model defines core domain types shared across the planner.
package model

import (
	"fmt"
	"time"
)

// Coordinate is a WGS-84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// Category is one of the four semantic POI buckets.
type Category string

const (
	CategoryAttraction Category = "attraction"
	CategoryHotel      Category = "hotel"
	CategoryRestaurant Category = "restaurant"
	CategoryMarket     Category = "market"
)

// PointOfInterest is a named geographic feature. Coord is nil when the
// upstream element carried no usable position.
type PointOfInterest struct {
	Name  string
	Coord *Coordinate
	Tags  map[string]string
}

// PoiCollection groups POIs by category. Built once per trip, never
// mutated after aggregation.
type PoiCollection struct {
	Attractions []PointOfInterest
	Hotels      []PointOfInterest
	Restaurants []PointOfInterest
	Markets     []PointOfInterest
}

// Event is a single scheduled itinerary entry. End is never before Start.
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// ItineraryDay holds the events for one calendar day. Day is 1-based.
type ItineraryDay struct {
	Day    int     `json:"day"`
	Events []Event `json:"events"`
}

// DaySummary is a one-line skeleton entry per day.
type DaySummary struct {
	Day     int    `json:"day"`
	Summary string `json:"summary"`
}

// TravelLeg is a point-to-point segment between two consecutive stops.
type TravelLeg struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceKm    float64 `json:"distance_km"`
	TravelTimeMin int     `json:"travel_time_min"`
}

// TravelEstimate is a flat per-day travel allowance.
type TravelEstimate struct {
	Day                 int `json:"day"`
	ApproxTravelMinutes int `json:"approx_travel_minutes"`
}

// CostBreakdown exposes each addend's subtotal alongside the grand total.
// All totals are already scaled by dayCount * personCount.
type CostBreakdown struct {
	HotelPerNight  int `json:"hotel_per_night"`
	HotelTotal     int `json:"hotel_total"`
	FoodTotal      int `json:"food_total"`
	TransportTotal int `json:"transport_total"`
	Total          int `json:"total"`
}

// TripRequest is the planning request exposed to the orchestrating caller.
type TripRequest struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	Days        int     `json:"days"`
	Persons     int     `json:"persons"`
	DailyBudget float64 `json:"daily_budget"`
}

// TripPlan is the aggregate planning result. Created fresh per request and
// never mutated after construction.
type TripPlan struct {
	TripID             string           `json:"trip_id"`
	Destination        string           `json:"destination"`
	DestinationDisplay string           `json:"destination_display"`
	Currency           string           `json:"currency"`
	EstimatedCost      int              `json:"estimated_cost"`
	CostBreakdown      CostBreakdown    `json:"cost_breakdown"`
	Attractions        []PoiView        `json:"attractions"`
	Hotels             []PoiView        `json:"hotels"`
	Restaurants        []PoiView        `json:"restaurants"`
	Markets            []PoiView        `json:"markets"`
	PlanSkeleton       []DaySummary     `json:"plan_skeleton"`
	Itinerary          []ItineraryDay   `json:"itinerary"`
	TravelDetails      []TravelLeg      `json:"travel_details"`
	TravelEstimates    []TravelEstimate `json:"travel_estimates"`
	PackingList        []string         `json:"packing_list"`
	BookingChecklist   []string         `json:"booking_checklist"`
}

// PoiView is the wire representation of a POI; Lat/Lon stay null when the
// source element had no position.
type PoiView struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// Views converts POIs to their wire form, preserving coordinate absence.
func Views(pois []PointOfInterest) []PoiView {
	out := make([]PoiView, 0, len(pois))
	for _, p := range pois {
		v := PoiView{Name: p.Name}
		if p.Coord != nil {
			lat, lon := p.Coord.Lat, p.Coord.Lon
			v.Lat, v.Lon = &lat, &lon
		}
		out = append(out, v)
	}
	return out
}
