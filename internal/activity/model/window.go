package model

import "time"

// DayOf truncates t to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// Window is the closed calendar-day range [Start, End] used by windowed metrics.
type Window struct {
	Start time.Time
	End   time.Time
}

// TrailingWindow returns [asOf - days, asOf] in whole days.
func TrailingWindow(asOf time.Time, days int) Window {
	end := DayOf(asOf)
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// LocalDay is the calendar day of t in its own offset, as midnight UTC.
// 2024-01-10T22:00:00-05:00 belongs to 2024-01-10 even though it is already
// 2024-01-11 in UTC.
func LocalDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the calendar day of t, read in t's own offset,
// falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := LocalDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}
