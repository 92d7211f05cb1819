package utils

import "time"

const DayFormat = "2006-01-02"

// FormatDayLabel renders a calendar day the way the booking UI shows it,
// e.g. "Tue, Sep 1".
func FormatDayLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatTimeLabel renders an hourly slot, e.g. "9 AM" or "3 PM".
func FormatTimeLabel(t time.Time) string {
	return t.Format("3 PM")
}

// ParseDay parses a "2006-01-02" day in the location given.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, loc)
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartOfNextDay returns midnight of the day after t, in t's location.
func StartOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
