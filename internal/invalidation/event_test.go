package invalidation

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func validEvent() Event {
	return Event{
		Version: 1,
		Op:      "update",
		Place:   "Varanasi",
		TS:      time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Event)
		wantErr bool
	}{
		{"valid minimal", func(*Event) {}, false},
		{"valid with coords", func(e *Event) { e.Lat, e.Lon = fptr(25.3), fptr(82.9) }, false},
		{"valid delete", func(e *Event) { e.Op = "delete" }, false},
		{"wrong version", func(e *Event) { e.Version = 2 }, true},
		{"unknown op", func(e *Event) { e.Op = "upsert" }, true},
		{"blank place", func(e *Event) { e.Place = "  " }, true},
		{"zero ts", func(e *Event) { e.TS = time.Time{} }, true},
		{"lat without lon", func(e *Event) { e.Lat = fptr(25.3) }, true},
		{"lon without lat", func(e *Event) { e.Lon = fptr(82.9) }, true},
		{"lat out of range", func(e *Event) { e.Lat, e.Lon = fptr(91), fptr(82.9) }, true},
		{"lon out of range", func(e *Event) { e.Lat, e.Lon = fptr(25.3), fptr(-181) }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := validEvent()
			tc.mutate(&ev)
			err := ev.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
