package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

// DrinkButtonAmount is what the reminder's drink button logs
const DrinkButtonAmount = 250

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	tracker    tracker.Service
	profiles   profileRepo.Repository
	log        *zap.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with the DM notifier
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Tracker     tracker.Service
	ProfileRepo profileRepo.Repository
	Logger      *zap.Logger
}

// NewSession creates an unopened bot session able to receive DM interactions
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages
	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		tracker:    cfg.Tracker,
		profiles:   cfg.ProfileRepo,
		log:        log,
		config:     cfg,
	}

	bot.session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewHydroCommand(b.tracker, b.profiles, b.log)); err != nil {
		return fmt.Errorf("failed to register hydro command: %w", err)
	}

	b.log.Info("discord bot running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn("failed to delete command", zap.String("command", cmdName), zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, per guild when a guild ID is configured
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.Error("error handling command",
					zap.String("command", i.ApplicationCommandData().Name),
					zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		action, ok := parseActionCustomID(i.MessageComponentData().CustomID)
		if !ok {
			return
		}

		resp := b.actionResponse(context.Background(), interactionUserID(i), action)
		if err := s.InteractionRespond(i.Interaction, resp); err != nil {
			b.log.Error("error handling reminder action", zap.String("action", action), zap.Error(err))
		}
	}
}

// actionResponse runs a reminder button and replaces the reminder message with the outcome
func (b *Bot) actionResponse(ctx context.Context, discordUserID, action string) *discordgo.InteractionResponse {
	update := func(content string) *discordgo.InteractionResponse {
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    content,
				Embeds:     []*discordgo.MessageEmbed{},
				Components: []discordgo.MessageComponent{},
			},
		}
	}

	switch action {
	case models.ActionDismiss:
		return update("Reminder dismissed.")

	case models.ActionDrink:
		identity, err := resolveProfile(ctx, b.profiles, discordUserID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				return update(notLinkedMessage)
			}
			b.log.Error("failed to resolve profile", zap.String("discord_id", discordUserID), zap.Error(err))
			return update("Something went wrong, try again later.")
		}

		out, err := b.tracker.AddRecord(ctx, &tracker.AddRecordInput{
			Identity: *identity,
			Amount:   DrinkButtonAmount,
			Type:     models.DrinkTypeWater,
		})
		if err != nil {
			b.log.Error("failed to log drink from reminder", zap.String("profile_id", identity.ProfileID), zap.Error(err))
			return update("Could not log your drink, try again later.")
		}

		resp := update("")
		resp.Data.Embeds = []*discordgo.MessageEmbed{renderLogged(out)}
		return resp

	default:
		return update(fmt.Sprintf("Unknown action %q", action))
	}
}
