package models

import "time"

// AchievementID identifies an entry of the fixed achievement catalog
type AchievementID string

const (
	// AchievementFirstSip unlocks when the evaluated day has any record
	AchievementFirstSip AchievementID = "first_sip"

	// AchievementGoalReached unlocks when the evaluated day meets its target
	AchievementGoalReached AchievementID = "goal_reached"

	// AchievementStreak3 unlocks on a streak of at least 3 days
	AchievementStreak3 AchievementID = "streak_3"

	// AchievementStreak7 unlocks on a streak of at least 7 days
	AchievementStreak7 AchievementID = "streak_7"

	// AchievementEarlyBird unlocks when a drink is logged before 8 AM
	AchievementEarlyBird AchievementID = "early_bird"
)

// Achievement is one catalog entry and its unlock state
type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`

	// Unlocked only ever transitions from false to true
	Unlocked bool `json:"unlocked"`

	// UnlockedAt is set when Unlocked flips
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// DefaultAchievements returns the locked catalog in display order
func DefaultAchievements() []*Achievement {
	return []*Achievement{
		{ID: AchievementFirstSip, Title: "First Sip", Description: "Log your first drink", Icon: "🥤"},
		{ID: AchievementGoalReached, Title: "Goal Smasher", Description: "Reach your daily goal", Icon: "🎯"},
		{ID: AchievementStreak3, Title: "On Fire", Description: "3-day streak", Icon: "🔥"},
		{ID: AchievementStreak7, Title: "Hydration Hero", Description: "7-day streak", Icon: "🔥"},
		{ID: AchievementEarlyBird, Title: "Early Bird", Description: "Drink before 8 AM", Icon: "🌅"},
	}
}

// CountUnlocked returns how many achievements are unlocked
func CountUnlocked(achievements []*Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
