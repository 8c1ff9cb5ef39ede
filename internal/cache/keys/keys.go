// Package keys builds the deterministic cache keys for geocode and POI
// lookups.
package keys

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	h3 "github.com/uber/h3-go/v4"
)

// PoiCellRes is the H3 resolution used to bucket POI queries: nearby centers
// share a cell, so repeated lookups around the same destination hit the same
// key.
const PoiCellRes = 7

// GeoKey keys a geocode resolution by the normalized destination name.
func GeoKey(place string) string {
	norm := normalizePlace(place)
	return fmt.Sprintf("geo:%016x", xxhash.Sum64String(norm))
}

// PoiKey keys a POI fetch by the H3 cell of its center plus the query shape.
// Falls back to a coordinate hash when the cell cannot be derived.
func PoiKey(lat, lon float64, radiusM, limit int) string {
	cell, err := h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lon}, PoiCellRes)
	if err != nil || !cell.IsValid() {
		sum := xxhash.Sum64String(fmt.Sprintf("%.6f,%.6f", lat, lon))
		return fmt.Sprintf("poi:%016x:%d:%d", sum, radiusM, limit)
	}
	return fmt.Sprintf("poi:%s:%d:%d", cell.String(), radiusM, limit)
}

// normalizePlace lower-cases and collapses whitespace so spacing variants of
// the same destination produce the same key.
func normalizePlace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wasWS := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			if !wasWS {
				b.WriteByte(' ')
				wasWS = true
			}
			continue
		}
		b.WriteRune(r)
		wasWS = false
	}
	return strings.TrimSpace(b.String())
}
