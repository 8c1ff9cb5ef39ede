package keys

import (
	"strings"
	"testing"
)

func TestGeoKeyDeterministic(t *testing.T) {
	a := GeoKey("Varanasi")
	b := GeoKey("Varanasi")
	if a != b {
		t.Fatalf("same place produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "geo:") {
		t.Fatalf("key %q missing geo: prefix", a)
	}
}

func TestGeoKeyNormalizesSpacingAndCase(t *testing.T) {
	base := GeoKey("new delhi")
	variants := []string{"New Delhi", "  new   delhi  ", "NEW\tDELHI", "new\ndelhi"}
	for _, v := range variants {
		if got := GeoKey(v); got != base {
			t.Fatalf("GeoKey(%q) = %q, want %q", v, got, base)
		}
	}
}

func TestGeoKeyDistinguishesPlaces(t *testing.T) {
	if GeoKey("Varanasi") == GeoKey("Jaipur") {
		t.Fatal("distinct places collided")
	}
}

func TestPoiKeyShape(t *testing.T) {
	k := PoiKey(25.3176, 82.9739, 5000, 50)
	if !strings.HasPrefix(k, "poi:") {
		t.Fatalf("key %q missing poi: prefix", k)
	}
	if !strings.HasSuffix(k, ":5000:50") {
		t.Fatalf("key %q missing query shape suffix", k)
	}
}

func TestPoiKeyBucketsNearbyCenters(t *testing.T) {
	// a few meters apart: same res-7 cell, same key
	a := PoiKey(25.31760, 82.97390, 5000, 50)
	b := PoiKey(25.31761, 82.97391, 5000, 50)
	if a != b {
		t.Fatalf("nearby centers split: %q vs %q", a, b)
	}
}

func TestPoiKeyVariesWithQueryShape(t *testing.T) {
	a := PoiKey(25.3176, 82.9739, 5000, 50)
	b := PoiKey(25.3176, 82.9739, 2000, 50)
	c := PoiKey(25.3176, 82.9739, 5000, 25)
	if a == b || a == c {
		t.Fatalf("radius/limit not part of key: %q %q %q", a, b, c)
	}
}

func TestPoiKeyDistantCentersDiffer(t *testing.T) {
	if PoiKey(25.3176, 82.9739, 5000, 50) == PoiKey(26.9124, 75.7873, 5000, 50) {
		t.Fatal("cities 500km apart share a POI key")
	}
}
