package reminder

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroflow/internal/services/reminder Service

import "context"

// Service decides once per tick whether a profile is due a reminder
type Service interface {
	// CheckReminders evaluates the profile's schedule against the current time and
	// delivers at most one reminder per wall clock minute
	CheckReminders(ctx context.Context, input *CheckRemindersInput) (*CheckRemindersOutput, error)

	// Forget drops the in-memory markers of a profile, used when a profile is deleted
	Forget(profileID string)
}
