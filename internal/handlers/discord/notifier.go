package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

// Messenger is the part of a Discord session the notifier uses
type Messenger interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds the dependencies of the DM notifier
type NotifierConfig struct {
	Messenger   Messenger
	ProfileRepo profileRepo.Repository
	Logger      *zap.Logger
}

// Notifier delivers reminders as direct messages to profiles that linked a Discord user
type Notifier struct {
	messenger Messenger
	profiles  profileRepo.Repository
	log       *zap.Logger
}

// NewNotifier creates a new DM notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Notifier{
		messenger: cfg.Messenger,
		profiles:  cfg.ProfileRepo,
		log:       log,
	}, nil
}

// Send implements notification.SystemChannel
func (n *Notifier) Send(ctx context.Context, msg *notification.SystemNotification) error {
	if msg == nil || msg.ProfileID == "" {
		return notification.ErrEmptyProfileID
	}

	user, err := n.profiles.GetUser(ctx, &profileRepo.GetUserInput{ProfileID: msg.ProfileID})
	if err != nil {
		if errors.Is(err, profileRepo.ErrUserNotFound) {
			return notification.ErrChannelUnavailable
		}
		return err
	}

	if user.DiscordID == "" {
		return notification.ErrChannelUnavailable
	}

	channel, err := n.messenger.UserChannelCreate(user.DiscordID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := n.messenger.ChannelMessageSendComplex(channel.ID, renderReminder(msg), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	n.log.Debug("reminder sent as DM",
		zap.String("profile_id", msg.ProfileID),
		zap.String("discord_id", user.DiscordID))
	return nil
}
