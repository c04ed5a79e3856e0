package discord

import (
	"time"

	"hackbot/pkg/tz"
)

// FormatEventTime formats an event timestamp for the schedule channel,
// e.g. "02/14/2026, 10:30 AM CT". A nil loc falls back to US/Central.
func FormatEventTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = tz.Central
	}
	return t.In(loc).Format("01/02/2006, 03:04 PM") + " CT"
}
