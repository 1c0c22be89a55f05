package domain

import "time"

// DayWindow is the half-open interval [Start, End) covering one calendar day.
// Both the one-vote-per-day rule and the leaderboard aggregate over it.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindowAt returns the window for the calendar day containing t,
// bounded at local midnight in t's location.
func DayWindowAt(t time.Time) DayWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DayWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

// Contains reports whether t falls inside the window.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
