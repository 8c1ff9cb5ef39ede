package travel

import (
	"testing"
	"time"

	"github.com/akhil-nair/trip-planner/internal/model"
)

func coord(lat, lon float64) *model.Coordinate {
	return &model.Coordinate{Lat: lat, Lon: lon}
}

func TestDistanceKm_SymmetricAndZero(t *testing.T) {
	a := model.Coordinate{Lat: 25.3176, Lon: 82.9739}
	b := model.Coordinate{Lat: 28.6139, Lon: 77.2090}

	if d := DistanceKm(a, a); d != 0 {
		t.Fatalf("distance(A,A) = %v, want 0", d)
	}
	ab, ba := DistanceKm(a, b), DistanceKm(b, a)
	if ab != ba {
		t.Fatalf("asymmetric: AB=%v BA=%v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("distance must be positive, got %v", ab)
	}
}

func TestDistanceKm_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	d := DistanceKm(model.Coordinate{Lat: 0, Lon: 0}, model.Coordinate{Lat: 0, Lon: 1})
	// one degree of arc on a 6371 km sphere
	want := 111.19
	if d < want-0.05 || d > want+0.05 {
		t.Fatalf("got %v, want ~%v", d, want)
	}
}

func TestLegs_AllCoordinatesPresent(t *testing.T) {
	pois := []model.PointOfInterest{
		{Name: "A", Coord: coord(25.31, 82.97)},
		{Name: "B", Coord: coord(25.32, 82.99)},
		{Name: "C", Coord: coord(25.28, 83.01)},
	}
	legs := Legs(pois)
	if len(legs) != 2 {
		t.Fatalf("got %d legs, want 2", len(legs))
	}
	if legs[0].From != "A" || legs[0].To != "B" || legs[1].From != "B" || legs[1].To != "C" {
		t.Fatalf("legs out of order: %+v", legs)
	}
}

func TestLegs_MissingCoordinateSkipsTouchingPairs(t *testing.T) {
	pois := []model.PointOfInterest{
		{Name: "A", Coord: coord(25.31, 82.97)},
		{Name: "B"}, // no position from upstream
		{Name: "C", Coord: coord(25.28, 83.01)},
		{Name: "D", Coord: coord(25.30, 83.02)},
	}
	legs := Legs(pois)
	if len(legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(legs))
	}
	if legs[0].From != "C" || legs[0].To != "D" {
		t.Fatalf("unexpected leg: %+v", legs[0])
	}
	for _, l := range legs {
		if l.From == "B" || l.To == "B" {
			t.Fatalf("leg touches coordinate-less POI: %+v", l)
		}
	}
}

func TestLegs_DurationDerivedFromRoundedDistance(t *testing.T) {
	// 1 degree of longitude at the equator: 111.19 km rounded
	pois := []model.PointOfInterest{
		{Name: "A", Coord: coord(0, 0)},
		{Name: "B", Coord: coord(0, 1)},
	}
	legs := Legs(pois)
	if len(legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(legs))
	}
	l := legs[0]
	if l.DistanceKm != 111.19 {
		t.Fatalf("distance = %v, want 111.19", l.DistanceKm)
	}
	// round(111.19 / 25 * 60) = 267, from the rounded figure
	if l.TravelTimeMin != 267 {
		t.Fatalf("duration = %d min, want 267", l.TravelTimeMin)
	}
}

func TestTravelTime_ModeTable(t *testing.T) {
	cases := []struct {
		mode Mode
		want time.Duration
	}{
		{ModeWalking, 2 * time.Hour},
		{ModeBiking, 40 * time.Minute},
		{ModeDriving, 12 * time.Minute},
		{ModeTransit, 20 * time.Minute},
		{Mode("hovercraft"), 2 * time.Hour}, // unknown falls back to walking
	}
	for _, tc := range cases {
		if got := TravelTime(10, tc.mode); got != tc.want {
			t.Fatalf("TravelTime(10, %s) = %v, want %v", tc.mode, got, tc.want)
		}
	}
	if got := TravelTime(0, ModeDriving); got != 0 {
		t.Fatalf("TravelTime(0) = %v, want 0", got)
	}
	if got := TravelTime(-3, ModeDriving); got != 0 {
		t.Fatalf("TravelTime(-3) = %v, want 0", got)
	}
}
