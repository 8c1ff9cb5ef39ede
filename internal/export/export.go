// Package export renders an itinerary as CSV or minimal iCal for the
// dashboard's download links.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/akhil-nair/trip-planner/internal/model"
)

const icalStamp = "20060102T150405Z"

// ItineraryCSV renders one row per event with a fixed header.
func ItineraryCSV(days []model.ItineraryDay) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"day", "start", "end", "title", "description", "location"}); err != nil {
		return "", err
	}
	for _, d := range days {
		for _, ev := range d.Events {
			row := []string{
				strconv.Itoa(d.Day),
				ev.Start.Format(time.RFC3339),
				ev.End.Format(time.RFC3339),
				ev.Title,
				ev.Description,
				ev.Location,
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// ICal renders a minimal VCALENDAR. Not a full RFC 5545 implementation,
// adequate for calendar import of the generated events.
func ICal(days []model.ItineraryDay, uid string) string {
	if uid == "" {
		uid = "trip-1"
	}
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//SmartTripPlanner//EN"}
	for _, d := range days {
		for _, ev := range d.Events {
			start := ev.Start.UTC().Format(icalStamp)
			end := ev.End.UTC().Format(icalStamp)
			lines = append(lines,
				"BEGIN:VEVENT",
				"UID:"+uid+"-"+strconv.Itoa(d.Day)+"-"+strings.ReplaceAll(ev.Title, " ", "_"),
				"DTSTAMP:"+start,
				"DTSTART:"+start,
				"DTEND:"+end,
				"SUMMARY:"+ev.Title,
				"DESCRIPTION:"+ev.Description,
				"END:VEVENT",
			)
		}
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n")
}
