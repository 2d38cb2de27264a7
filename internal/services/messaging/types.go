package messaging

import (
	"github.com/KirkDiggler/hydroflow/internal/models"
)

// ReminderKind represents the situation a reminder was raised for
type ReminderKind string

const (
	// ReminderKindScheduled is a specific-times reminder
	ReminderKindScheduled ReminderKind = "scheduled"

	// ReminderKindInterval fires after the configured gap since the last drink
	ReminderKindInterval ReminderKind = "interval"

	// ReminderKindMorning fires once after wake time when nothing was logged yet
	ReminderKindMorning ReminderKind = "morning"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetReminderMessageInput contains parameters for getting a reminder message
type GetReminderMessageInput struct {
	// Kind selects the reminder copy
	Kind ReminderKind
}

// GetReminderMessageOutput contains the reminder title and body
type GetReminderMessageOutput struct {
	Title   string
	Message string
}

// GetGoalReachedMessageInput is the input for GetGoalReachedMessage
type GetGoalReachedMessageInput struct {
}

// GetGoalReachedMessageOutput is the output for GetGoalReachedMessage
type GetGoalReachedMessageOutput struct {
	Title   string
	Message string
}

// GetBadgeUnlockedMessageInput is the input for GetBadgeUnlockedMessage
type GetBadgeUnlockedMessageInput struct {
	// Achievement is the entry that was just unlocked
	Achievement *models.Achievement
}

// GetBadgeUnlockedMessageOutput is the output for GetBadgeUnlockedMessage
type GetBadgeUnlockedMessageOutput struct {
	Title   string
	Message string
}

// GetSyncFailedMessageInput is the input for GetSyncFailedMessage
type GetSyncFailedMessageInput struct {
}

// GetSyncFailedMessageOutput is the output for GetSyncFailedMessage
type GetSyncFailedMessageOutput struct {
	Title   string
	Message string
}

// GetProgressMessageInput contains parameters for a progress encouragement
type GetProgressMessageInput struct {
	// Percentage is the day's progress towards the goal, 0 to 100
	Percentage int

	// Streak is the current streak in days
	Streak int
}

// GetProgressMessageOutput contains the encouragement and its tone
type GetProgressMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the random selection of encouragement lines; zero uses the current time
	Seed int64
}
