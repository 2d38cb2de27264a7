package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_notification.go github.com/KirkDiggler/hydroflow/internal/services/notification Service,SystemChannel,Publisher

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Service delivers reminders and ephemeral feedback to a profile
type Service interface {
	// Notify tries the system channel and falls back to an in-app toast plus the notification cue
	Notify(ctx context.Context, input *NotifyInput) (*NotifyOutput, error)

	// Toast publishes a short in-app message
	Toast(ctx context.Context, input *ToastInput) error

	// PlaySound publishes an audio cue
	PlaySound(ctx context.Context, input *PlaySoundInput) error
}

// SystemChannel is an out-of-app notification surface such as a chat DM
type SystemChannel interface {
	// Send delivers a notification or returns ErrChannelUnavailable when the profile cannot be reached
	Send(ctx context.Context, notification *SystemNotification) error
}

// Publisher pushes events to a profile's connected clients
type Publisher interface {
	// Publish delivers the event to every subscriber of the profile. Having none is not an error
	Publish(profileID string, event *models.Event)
}
