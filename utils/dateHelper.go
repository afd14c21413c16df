package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// StartOfCurrentYear returns Jan 1 00:00:00 UTC of the current year, the
// default lower bound for every date-ranged report.
func StartOfCurrentYear() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ParseDateOrDefault parses a YYYY-MM-DD filter value. A missing or
// unparseable value degrades to def instead of failing the request.
func ParseDateOrDefault(value string, def time.Time) time.Time {
	if value == "" {
		return def
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return def
	}
	return t
}

// EndOfDay pushes a date-only bound to the last instant of that day so an
// inclusive end_date filter captures the whole day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// YearOrDefault keeps a year filter inside a sane window; anything else
// degrades to the current year.
func YearOrDefault(year int) int {
	if year < 1900 || year > 9999 {
		return time.Now().UTC().Year()
	}
	return year
}
