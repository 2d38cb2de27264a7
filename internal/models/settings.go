package models

import (
	"slices"
)

// ReminderType selects how reminders are scheduled
type ReminderType string

const (
	// ReminderTypeInterval fires after a fixed number of minutes without a drink
	ReminderTypeInterval ReminderType = "interval"

	// ReminderTypeSpecific fires at configured times of day
	ReminderTypeSpecific ReminderType = "specific"
)

// IsValid reports whether the reminder type is known
func (t ReminderType) IsValid() bool {
	return t == ReminderTypeInterval || t == ReminderTypeSpecific
}

// UserSettings is the singleton settings object of a profile
type UserSettings struct {
	// DailyGoal is the target intake in milliliters
	DailyGoal int `json:"dailyGoal"`

	// ReminderIntervalMinutes is the gap that triggers an interval reminder
	ReminderIntervalMinutes int `json:"reminderIntervalMinutes"`

	// NotificationsEnabled turns the reminder evaluator on for the profile
	NotificationsEnabled bool `json:"notificationsEnabled"`

	// WakeUpTime is the "HH:MM" start of the reminder window
	WakeUpTime string `json:"wakeUpTime"`

	// BedTime is the "HH:MM" end of the reminder window
	BedTime string `json:"bedTime"`

	// ReminderType selects interval or specific times mode
	ReminderType ReminderType `json:"reminderType"`

	// SpecificTimes are the "HH:MM" trigger times for specific mode
	SpecificTimes []string `json:"specificTimes"`
}

// DefaultSettings returns a fresh copy of the default settings
func DefaultSettings() *UserSettings {
	return &UserSettings{
		DailyGoal:               2200,
		ReminderIntervalMinutes: 120,
		NotificationsEnabled:    false,
		WakeUpTime:              "09:00",
		BedTime:                 "23:00",
		ReminderType:            ReminderTypeInterval,
		SpecificTimes:           []string{"09:00", "12:00", "15:00", "18:00", "21:00"},
	}
}

// Clone returns a deep copy of the settings
func (s *UserSettings) Clone() *UserSettings {
	if s == nil {
		return nil
	}

	c := *s
	c.SpecificTimes = slices.Clone(s.SpecificTimes)
	return &c
}

// HasSpecificTime reports whether value is one of the configured trigger times
func (s *UserSettings) HasSpecificTime(value string) bool {
	return slices.Contains(s.SpecificTimes, value)
}

// SettingsPatch is a field-level partial update. Nil fields are left untouched
type SettingsPatch struct {
	DailyGoal               *int          `json:"dailyGoal,omitempty"`
	ReminderIntervalMinutes *int          `json:"reminderIntervalMinutes,omitempty"`
	NotificationsEnabled    *bool         `json:"notificationsEnabled,omitempty"`
	WakeUpTime              *string       `json:"wakeUpTime,omitempty"`
	BedTime                 *string       `json:"bedTime,omitempty"`
	ReminderType            *ReminderType `json:"reminderType,omitempty"`
	SpecificTimes           []string      `json:"specificTimes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *SettingsPatch) IsEmpty() bool {
	return p == nil || (p.DailyGoal == nil &&
		p.ReminderIntervalMinutes == nil &&
		p.NotificationsEnabled == nil &&
		p.WakeUpTime == nil &&
		p.BedTime == nil &&
		p.ReminderType == nil &&
		p.SpecificTimes == nil)
}

// Apply returns a copy of base with the patch's fields overlaid
func (p *SettingsPatch) Apply(base *UserSettings) *UserSettings {
	out := base.Clone()
	if p == nil {
		return out
	}

	if p.DailyGoal != nil {
		out.DailyGoal = *p.DailyGoal
	}
	if p.ReminderIntervalMinutes != nil {
		out.ReminderIntervalMinutes = *p.ReminderIntervalMinutes
	}
	if p.NotificationsEnabled != nil {
		out.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.WakeUpTime != nil {
		out.WakeUpTime = *p.WakeUpTime
	}
	if p.BedTime != nil {
		out.BedTime = *p.BedTime
	}
	if p.ReminderType != nil {
		out.ReminderType = *p.ReminderType
	}
	if p.SpecificTimes != nil {
		out.SpecificTimes = slices.Clone(p.SpecificTimes)
	}
	return out
}
