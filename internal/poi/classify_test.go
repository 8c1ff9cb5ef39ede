package poi

import (
	"testing"

	"github.com/akhil-nair/trip-planner/internal/model"
)

func TestClassify_TagTable(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want model.Category
		ok   bool
	}{
		{map[string]string{"tourism": "attraction"}, model.CategoryAttraction, true},
		{map[string]string{"tourism": "museum"}, model.CategoryAttraction, true},
		{map[string]string{"tourism": "hotel"}, model.CategoryHotel, true},
		{map[string]string{"amenity": "restaurant"}, model.CategoryRestaurant, true},
		{map[string]string{"shop": "supermarket"}, model.CategoryMarket, true},
		{map[string]string{"shop": "mall"}, model.CategoryMarket, true},
		{map[string]string{"tourism": "viewpoint"}, "", false},
		{map[string]string{}, "", false},
		{nil, "", false},
	}
	for _, tc := range cases {
		got, ok := Classify(tc.tags)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Classify(%v) = (%q, %v), want (%q, %v)", tc.tags, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// an element tagged both as attraction and mall classifies once, by the
	// earlier rule
	got, ok := Classify(map[string]string{"tourism": "attraction", "shop": "mall"})
	if !ok || got != model.CategoryAttraction {
		t.Fatalf("got (%q, %v), want (attraction, true)", got, ok)
	}

	got, ok = Classify(map[string]string{"tourism": "hotel", "amenity": "restaurant"})
	if !ok || got != model.CategoryHotel {
		t.Fatalf("got (%q, %v), want (hotel, true)", got, ok)
	}
}
