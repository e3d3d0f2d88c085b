package domain

import "time"

// DayWindow is the server-local calendar-day interval scoping "today". The
// interval is half-open: Start <= t < End, with End at midnight of the next
// day so the final second of the day is not clipped.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Today derives the day window containing now, in now's location. Computed
// fresh on every operation, never cached.
func Today(now time.Time) DayWindow {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return DayWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// Contains reports whether t falls inside the window.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Key is the window's date in ISO form, used for day-scoped guard keys.
func (w DayWindow) Key() string {
	return w.Start.Format("2006-01-02")
}

// Remaining is the duration from now until the window closes. Zero or
// negative when now is past the window.
func (w DayWindow) Remaining(now time.Time) time.Duration {
	return w.End.Sub(now)
}
