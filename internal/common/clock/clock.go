package clock

import (
	"fmt"
	"time"
)

// DateLayout is the calendar key format used for daily stats
const DateLayout = "2006-01-02"

// MinuteLayout is the wall clock format used by reminders and settings
const MinuteLayout = "15:04"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/hydroflow/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct {
	// Location is the timezone calendar days are computed in. Defaults to time.Local
	Location *time.Location
}

// New creates a clock reporting time in the given location
func New(loc *time.Location) *DefaultClock {
	return &DefaultClock{Location: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}

	return time.Now().In(c.Location)
}

// DateKey formats t as a calendar date key
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// HourMinute formats t as "HH:MM"
func HourMinute(t time.Time) string {
	return t.Format(MinuteLayout)
}

// ParseHourMinute parses an "HH:MM" value and returns minutes since midnight
func ParseHourMinute(value string) (int, error) {
	t, err := time.Parse(MinuteLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// MinuteOfDay returns minutes since midnight for t in its own location
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBack returns the date key n calendar days before t
func DaysBack(t time.Time, n int) string {
	return DateKey(StartOfDay(t).AddDate(0, 0, -n))
}
