package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHourMinute(t *testing.T) {
	minutes, err := ParseHourMinute("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseHourMinute("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = ParseHourMinute("9am")
	assert.Error(t, err)

	_, err = ParseHourMinute("25:00")
	assert.Error(t, err)
}

func TestDaysBackCrossesMonths(t *testing.T) {
	now := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-01", DaysBack(now, 0))
	assert.Equal(t, "2025-02-28", DaysBack(now, 1))
	assert.Equal(t, "2025-02-22", DaysBack(now, 7))
}

func TestDefaultClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	c := New(loc)

	assert.Equal(t, loc, c.Now().Location())
	assert.Equal(t, "07:05", HourMinute(time.Date(2025, 1, 1, 7, 5, 59, 0, loc)))
}
