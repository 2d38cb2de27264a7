package notification

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

type service struct {
	publisher Publisher
	system    SystemChannel
	log       *zap.Logger
}

// New creates a new notification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		publisher: cfg.Publisher,
		system:    cfg.SystemChannel,
		log:       log,
	}, nil
}

// Notify delivers through the system channel when possible. Delivery
// failures never surface to the caller, only invalid input does
func (s *service) Notify(ctx context.Context, input *NotifyInput) (*NotifyOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	if s.system != nil {
		err := s.system.Send(ctx, &SystemNotification{
			ProfileID: input.ProfileID,
			Title:     input.Title,
			Body:      input.Body,
			Actions:   input.Actions,
		})
		if err == nil {
			return &NotifyOutput{Delivery: DeliverySystem}, nil
		}

		if errors.Is(err, ErrChannelUnavailable) {
			s.log.Debug("system notification unavailable, falling back to toast",
				zap.String("profile_id", input.ProfileID))
		} else {
			s.log.Warn("system notification failed, falling back to toast",
				zap.String("profile_id", input.ProfileID), zap.Error(err))
		}
	}

	s.publisher.Publish(input.ProfileID, &models.Event{
		Type:    models.EventTypeToast,
		Title:   input.Title,
		Message: input.Body,
		Actions: input.Actions,
	})
	s.publisher.Publish(input.ProfileID, &models.Event{
		Type: models.EventTypeSound,
		Cue:  models.SoundNotification,
	})

	return &NotifyOutput{Delivery: DeliveryInApp}, nil
}

// Toast publishes a short in-app message
func (s *service) Toast(ctx context.Context, input *ToastInput) error {
	if input == nil || input.ProfileID == "" {
		return ErrEmptyProfileID
	}

	s.publisher.Publish(input.ProfileID, &models.Event{
		Type:    models.EventTypeToast,
		Title:   input.Title,
		Message: input.Message,
	})
	return nil
}

// PlaySound publishes an audio cue
func (s *service) PlaySound(ctx context.Context, input *PlaySoundInput) error {
	if input == nil || input.ProfileID == "" {
		return ErrEmptyProfileID
	}

	switch input.Cue {
	case models.SoundClick, models.SoundWater, models.SoundSuccess, models.SoundNotification:
	default:
		return ErrInvalidSoundCue
	}

	s.publisher.Publish(input.ProfileID, &models.Event{
		Type: models.EventTypeSound,
		Cue:  input.Cue,
	})
	return nil
}
