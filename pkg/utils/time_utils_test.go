package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayAndTimeLabels(t *testing.T) {
	at := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tue, Sep 1", FormatDayLabel(at))
	assert.Equal(t, "9 AM", FormatTimeLabel(at))

	afternoon := time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "3 PM", FormatTimeLabel(afternoon))

	noon := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 PM", FormatTimeLabel(noon))
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-09-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", day.Format(DayFormat))

	_, err = ParseDay("09/01/2026", time.UTC)
	assert.Error(t, err)
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestStartOfNextDay(t *testing.T) {
	at := time.Date(2026, time.August, 28, 16, 45, 12, 0, time.UTC)
	next := StartOfNextDay(at)

	assert.Equal(t, "2026-08-29", next.Format(DayFormat))
	assert.Zero(t, next.Hour())
	assert.Zero(t, next.Minute())
}
