package notification

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Delivery names the surface a notification reached
type Delivery string

const (
	// DeliverySystem means the system channel accepted the notification
	DeliverySystem Delivery = "system"

	// DeliveryInApp means the toast and sound fallback was used
	DeliveryInApp Delivery = "in_app"
)

// SystemNotification is what a SystemChannel sends
type SystemNotification struct {
	ProfileID string
	Title     string
	Body      string
	Actions   []models.NotificationAction
}

// Config holds the dependencies of the notification service
type Config struct {
	// Publisher reaches in-app clients; required
	Publisher Publisher

	// SystemChannel is optional; without it every notification falls back to in-app
	SystemChannel SystemChannel

	Logger *zap.Logger
}

type NotifyInput struct {
	ProfileID string
	Title     string
	Body      string
	Actions   []models.NotificationAction
}

type NotifyOutput struct {
	Delivery Delivery
}

type ToastInput struct {
	ProfileID string
	Title     string
	Message   string
}

type PlaySoundInput struct {
	ProfileID string
	Cue       models.SoundCue
}
