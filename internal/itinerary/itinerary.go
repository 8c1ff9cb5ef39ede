// Package itinerary distributes points of interest across trip days and
// derives the fixed-rate cost estimate.
package itinerary

import (
	"fmt"
	"time"

	"github.com/akhil-nair/trip-planner/internal/model"
)

// Fixed per-unit daily rates (INR).
const (
	HotelPerNight   = 2000
	FoodPerDay      = 500
	TransportPerDay = 300

	Currency = "₹"
)

// Scheduling policy: at most two attraction slots per day, first at 09:00,
// three hours apart, two hours each. The window restarts at attraction index
// 0 every day, so attractions beyond the first two are never scheduled.
const (
	maxEventsPerDay    = 2
	firstEventHour     = 9
	eventGapHours      = 3
	eventDurationHours = 2
)

// Synthesize builds one ItineraryDay per trip day. Events reference the
// destination name in their description and carry the resolved display name
// as their location. Days beyond the available attractions simply carry
// fewer (or zero) events; that is a degraded plan, not an error.
func Synthesize(attractions []model.PointOfInterest, days int, start time.Time, destination, displayName string) []model.ItineraryDay {
	out := make([]model.ItineraryDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		events := make([]model.Event, 0, maxEventsPerDay)
		for j, p := range attractions {
			if j >= maxEventsPerDay {
				break
			}
			evStart := time.Date(date.Year(), date.Month(), date.Day(),
				firstEventHour+j*eventGapHours, 0, 0, 0, date.Location())
			events = append(events, model.Event{
				Title:       p.Name,
				Description: fmt.Sprintf("Visit %s in %s", p.Name, destination),
				Location:    displayName,
				Start:       evStart,
				End:         evStart.Add(eventDurationHours * time.Hour),
			})
		}
		out = append(out, model.ItineraryDay{Day: i + 1, Events: events})
	}
	return out
}

// Skeleton produces the one-line per-day plan summary.
func Skeleton(days int, destination string) []model.DaySummary {
	out := make([]model.DaySummary, 0, days)
	for i := 1; i <= days; i++ {
		out = append(out, model.DaySummary{
			Day:     i,
			Summary: fmt.Sprintf("Activities planned in %s", destination),
		})
	}
	return out
}

// TravelEstimates allots a flat hour of travel per day.
func TravelEstimates(days int) []model.TravelEstimate {
	out := make([]model.TravelEstimate, 0, days)
	for i := 1; i <= days; i++ {
		out = append(out, model.TravelEstimate{Day: i, ApproxTravelMinutes: 60})
	}
	return out
}

// EstimateCost scales each fixed daily rate by days*persons; the grand total
// is the sum of those subtotals.
func EstimateCost(days, persons int) model.CostBreakdown {
	factor := days * persons
	b := model.CostBreakdown{
		HotelPerNight:  HotelPerNight,
		HotelTotal:     HotelPerNight * factor,
		FoodTotal:      FoodPerDay * factor,
		TransportTotal: TransportPerDay * factor,
	}
	b.Total = b.HotelTotal + b.FoodTotal + b.TransportTotal
	return b
}

// PackingList is fixed content, not derived from trip parameters.
func PackingList() []string {
	return []string{
		"Comfortable shoes",
		"Backpack",
		"Weather-appropriate clothes",
		"Personal essentials",
	}
}

// BookingChecklist is fixed content, not derived from trip parameters.
func BookingChecklist() []string {
	return []string{
		"Book hotel",
		"Plan transport",
		"Buy attraction tickets",
		"Carry travel documents",
		"Check weather",
	}
}
