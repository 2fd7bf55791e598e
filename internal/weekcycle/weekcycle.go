// Package weekcycle derives the canonical rotation-week boundary. A rotation
// week starts on Friday at 00:00 local time; community Juz assignments and
// listening history are bucketed by that boundary.
package weekcycle

import "time"

// WeekStart returns the most recent Friday at 00:00 in t's location. A
// timestamp on a Friday maps to that same Friday.
func WeekStart(t time.Time) time.Time {
	// Weekday is 0=Sunday..6=Saturday, so Friday needs (weekday+2) mod 7
	// days subtracted.
	daysBack := (int(t.Weekday()) + 2) % 7
	day := t.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// WeekKey returns the ISO date (YYYY-MM-DD) of the week start, used as the
// grouping key for weekly cohorts.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}
