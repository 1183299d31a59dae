package domain

import (
	"math"
	"time"
)

// DateLayout is the calendar-day layout used for persisted day strings.
const DateLayout = "2006-01-02"

// DateOf truncates t to midnight of its calendar day in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey returns the calendar day of t formatted with DateLayout.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day, each read
// in its own location.
func SameDay(a, b time.Time) bool {
	return CompareDays(a, b) == 0
}

// CompareDays orders a and b by calendar day only. Time of day is ignored.
func CompareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	av := ay*10000 + int(am)*100 + ad
	bv := by*10000 + int(bm)*100 + bd
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// DaysBetween returns the number of calendar days from a to b.
// Positive when b is later than a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(math.Round(ub.Sub(ua).Hours() / 24))
}

// ParseDay parses a DateLayout day string into midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
