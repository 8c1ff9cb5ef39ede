package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/akhil-nair/trip-planner/internal/model"
)

func sampleDays() []model.ItineraryDay {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	return []model.ItineraryDay{
		{
			Day: 1,
			Events: []model.Event{
				{
					Title:       "Kashi Vishwanath Temple",
					Description: "Visit Kashi Vishwanath Temple in Varanasi",
					Location:    "Varanasi, Uttar Pradesh, India",
					Start:       start,
					End:         start.Add(2 * time.Hour),
				},
				{
					Title:       "Ramnagar Fort",
					Description: "Visit Ramnagar Fort in Varanasi",
					Location:    "Varanasi, Uttar Pradesh, India",
					Start:       start.Add(3 * time.Hour),
					End:         start.Add(5 * time.Hour),
				},
			},
		},
		{Day: 2},
	}
}

func TestItineraryCSV(t *testing.T) {
	out, err := ItineraryCSV(sampleDays())
	if err != nil {
		t.Fatalf("ItineraryCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 { // header + 2 events
		t.Fatalf("rows = %d, want 3", len(records))
	}
	header := strings.Join(records[0], ",")
	if header != "day,start,end,title,description,location" {
		t.Fatalf("header = %q", header)
	}
	first := records[1]
	if first[0] != "1" || first[3] != "Kashi Vishwanath Temple" {
		t.Fatalf("first row = %v", first)
	}
	if first[1] != "2024-01-10T09:00:00Z" || first[2] != "2024-01-10T11:00:00Z" {
		t.Fatalf("times = %q..%q", first[1], first[2])
	}
}

func TestItineraryCSVEmpty(t *testing.T) {
	out, err := ItineraryCSV(nil)
	if err != nil {
		t.Fatalf("ItineraryCSV: %v", err)
	}
	if strings.TrimSpace(out) != "day,start,end,title,description,location" {
		t.Fatalf("empty itinerary output = %q", out)
	}
}

func TestICalStructure(t *testing.T) {
	out := ICal(sampleDays(), "trip_ab12cd34")

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") || !strings.HasSuffix(out, "END:VCALENDAR") {
		t.Fatalf("calendar envelope wrong:\n%s", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(out, "UID:trip_ab12cd34-1-Kashi_Vishwanath_Temple") {
		t.Fatalf("missing expected UID:\n%s", out)
	}
	if !strings.Contains(out, "DTSTART:20240110T090000Z") ||
		!strings.Contains(out, "DTEND:20240110T110000Z") {
		t.Fatalf("missing UTC stamps:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Ramnagar Fort") {
		t.Fatalf("missing second event:\n%s", out)
	}
}

func TestICalDefaultUID(t *testing.T) {
	out := ICal(sampleDays(), "")
	if !strings.Contains(out, "UID:trip-1-1-") {
		t.Fatalf("default uid not applied:\n%s", out)
	}
}
