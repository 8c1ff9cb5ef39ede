// Package travel computes great-circle distances and transit-time estimates
// between itinerary stops.
package travel

import (
	"math"
	"time"

	"github.com/golang/geo/s2"

	"github.com/akhil-nair/trip-planner/internal/model"
)

const EarthRadiusKm = 6371.0

// LegSpeedKmh is the assumed driving speed for inter-stop leg estimates.
const LegSpeedKmh = 25.0

// Mode selects a speed from the general travel-time table.
type Mode string

const (
	ModeWalking Mode = "walking"
	ModeBiking  Mode = "biking"
	ModeDriving Mode = "driving"
	ModeTransit Mode = "transit"
)

var modeSpeedsKmh = map[Mode]float64{
	ModeWalking: 5,
	ModeBiking:  15,
	ModeDriving: 50,
	ModeTransit: 30,
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers.
func DistanceKm(a, b model.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// TravelTime estimates how long distanceKm takes by the given mode. Unknown
// modes fall back to walking speed.
func TravelTime(distanceKm float64, mode Mode) time.Duration {
	if distanceKm <= 0 {
		return 0
	}
	speed, ok := modeSpeedsKmh[mode]
	if !ok {
		speed = modeSpeedsKmh[ModeWalking]
	}
	hours := distanceKm / speed
	return time.Duration(math.Round(hours*3600)) * time.Second
}

// Legs chains consecutive POIs into travel legs. A pair is skipped when
// either end lacks a coordinate, so the result may be shorter than n-1.
// Distance is rounded to 2 decimals before the duration is derived from it,
// keeping both displayed figures consistent.
func Legs(pois []model.PointOfInterest) []model.TravelLeg {
	var legs []model.TravelLeg
	for i := 0; i+1 < len(pois); i++ {
		from, to := pois[i], pois[i+1]
		if from.Coord == nil || to.Coord == nil {
			continue
		}
		km := round2(DistanceKm(*from.Coord, *to.Coord))
		legs = append(legs, model.TravelLeg{
			From:          from.Name,
			To:            to.Name,
			DistanceKm:    km,
			TravelTimeMin: int(math.Round(km / LegSpeedKmh * 60)),
		})
	}
	return legs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
