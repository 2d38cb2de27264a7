package models

import (
	"math"
	"sort"
	"time"
)

// FallbackTarget is the target assumed for a stored day that carries none
const FallbackTarget = 2000

// DailyStats is the aggregate of all drink records for one calendar date plus that date's goal
type DailyStats struct {
	// Date is the calendar date key (YYYY-MM-DD)
	Date string `json:"date"`

	// Target is the goal in milliliters that applied on this date
	Target int `json:"target"`

	// CaloriesBurned is carried for storage compatibility and not computed
	CaloriesBurned int `json:"caloriesBurned"`

	// HeartRate is carried for storage compatibility and not computed
	HeartRate int `json:"heartRate"`

	// WorkoutTimeMinutes is carried for storage compatibility and not computed
	WorkoutTimeMinutes int `json:"workoutTimeMinutes"`

	// Records holds the day's drinks, newest first
	Records []*WaterRecord `json:"records"`
}

// NewDailyStats creates an empty day with the given target
func NewDailyStats(date string, target int) *DailyStats {
	return &DailyStats{
		Date:    date,
		Target:  target,
		Records: []*WaterRecord{},
	}
}

// Total sums the amount of every record
func (d *DailyStats) Total() int {
	if d == nil {
		return 0
	}

	total := 0
	for _, r := range d.Records {
		total += r.Amount
	}
	return total
}

// EffectiveTarget is the stored target, or FallbackTarget when unset
func (d *DailyStats) EffectiveTarget() int {
	if d == nil || d.Target <= 0 {
		return FallbackTarget
	}
	return d.Target
}

// GoalReached reports whether the day's total meets its target
func (d *DailyStats) GoalReached() bool {
	return d.Total() >= d.EffectiveTarget()
}

// Percentage is the share of the target consumed, rounded and capped at 100
func (d *DailyStats) Percentage() int {
	pct := int(math.Round(float64(d.Total()) / float64(d.EffectiveTarget()) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining is the amount left to reach the target, never negative
func (d *DailyStats) Remaining() int {
	remaining := d.EffectiveTarget() - d.Total()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// WaterPurity is the percentage of the total that was plain water
func (d *DailyStats) WaterPurity() int {
	total := d.Total()
	if total == 0 {
		return 0
	}

	water := 0
	for _, r := range d.Records {
		if r.Type == DrinkTypeWater {
			water += r.Amount
		}
	}
	return int(math.Round(float64(water) / float64(total) * 100))
}

// Latest returns the record with the newest timestamp, or nil for an empty day
func (d *DailyStats) Latest() *WaterRecord {
	if d == nil {
		return nil
	}

	var latest *WaterRecord
	for _, r := range d.Records {
		if latest == nil || r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest
}

// Prepend adds a record to the front of the day
func (d *DailyStats) Prepend(record *WaterRecord) {
	d.Records = append([]*WaterRecord{record}, d.Records...)
}

// Remove deletes the record with the given id, preserving the order of the rest.
// It returns false when no record matched
func (d *DailyStats) Remove(id string) bool {
	for i, r := range d.Records {
		if r.ID == id {
			d.Records = append(d.Records[:i:i], d.Records[i+1:]...)
			return true
		}
	}
	return false
}

// SortNewestFirst orders records by timestamp descending
func (d *DailyStats) SortNewestFirst() {
	sort.SliceStable(d.Records, func(i, j int) bool {
		return d.Records[i].Timestamp.After(d.Records[j].Timestamp)
	})
}

// HasRecordBefore reports whether any record was logged before hour:00 in loc
func (d *DailyStats) HasRecordBefore(hour int, loc *time.Location) bool {
	if d == nil {
		return false
	}

	for _, r := range d.Records {
		if r.Timestamp.In(loc).Hour() < hour {
			return true
		}
	}
	return false
}
