package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroflow/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetReminderMessage returns the title and body for a reminder
	GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error)

	// GetGoalReachedMessage returns the notification sent when the day's goal is met
	GetGoalReachedMessage(ctx context.Context, input *GetGoalReachedMessageInput) (*GetGoalReachedMessageOutput, error)

	// GetBadgeUnlockedMessage returns the toast for a newly unlocked achievement
	GetBadgeUnlockedMessage(ctx context.Context, input *GetBadgeUnlockedMessageInput) (*GetBadgeUnlockedMessageOutput, error)

	// GetSyncFailedMessage returns the toast shown when a record only saved locally
	GetSyncFailedMessage(ctx context.Context, input *GetSyncFailedMessageInput) (*GetSyncFailedMessageOutput, error)

	// GetProgressMessage returns a short encouragement matching the day's progress
	GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error)
}
