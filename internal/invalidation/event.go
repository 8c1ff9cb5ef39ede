// Package invalidation defines the place-update events that evict stale
// gazetteer and POI cache entries.
package invalidation

import (
	"fmt"
	"strings"
	"time"
)

// Event describes an upstream place change. Lat/Lon are optional; when
// present the POI cache entry around that position is evicted too.
type Event struct {
	Version int       `json:"version"`
	Op      string    `json:"op"`
	Place   string    `json:"place"`
	TS      time.Time `json:"ts"`
	Lat     *float64  `json:"lat,omitempty"`
	Lon     *float64  `json:"lon,omitempty"`
	Source  string    `json:"source,omitempty"`
}

func (e Event) Validate() error {
	if e.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	switch e.Op {
	case "update", "delete":
	default:
		return fmt.Errorf("op must be update|delete")
	}
	if strings.TrimSpace(e.Place) == "" {
		return fmt.Errorf("place is required")
	}
	if e.TS.IsZero() {
		return fmt.Errorf("ts is required")
	}
	if (e.Lat == nil) != (e.Lon == nil) {
		return fmt.Errorf("lat and lon must be given together")
	}
	if e.Lat != nil {
		if *e.Lat < -90 || *e.Lat > 90 {
			return fmt.Errorf("lat out of range")
		}
		if *e.Lon < -180 || *e.Lon > 180 {
			return fmt.Errorf("lon out of range")
		}
	}
	return nil
}
