package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindowAt(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, loc)

	w := DayWindowAt(now)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), w.End)
}

func TestDayWindowContains(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	w := DayWindowAt(time.Date(2024, 3, 15, 14, 0, 0, 0, loc))

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 23, 59, 59, 0, loc)))
	assert.False(t, w.Contains(time.Date(2024, 3, 14, 23, 59, 59, 0, loc)))
	assert.False(t, w.Contains(time.Date(2024, 3, 16, 0, 0, 0, 1, loc)))
}

func TestDayWindowResetsAcrossDays(t *testing.T) {
	loc := time.Local
	morning := DayWindowAt(time.Date(2024, 3, 15, 9, 0, 0, 0, loc))
	afternoon := DayWindowAt(time.Date(2024, 3, 15, 14, 0, 0, 0, loc))
	nextDay := DayWindowAt(time.Date(2024, 3, 16, 9, 0, 0, 0, loc))

	assert.Equal(t, morning, afternoon, "same day yields the same window")
	assert.Equal(t, morning.End, nextDay.Start, "windows tile with no gap")
}
