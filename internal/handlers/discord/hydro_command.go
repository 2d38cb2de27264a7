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

const notLinkedMessage = "Your Discord account is not linked to a HydroFlow profile. Add your Discord ID in the app's profile settings."

// HydroCommand handles the /hydro command
type HydroCommand struct {
	BaseCommand
	tracker  tracker.Service
	profiles profileRepo.Repository
	log      *zap.Logger
}

// NewHydroCommand creates a new hydro command handler
func NewHydroCommand(trackerService tracker.Service, profiles profileRepo.Repository, log *zap.Logger) *HydroCommand {
	if log == nil {
		log = zap.NewNop()
	}

	minAmount := float64(1)

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.DrinkTypes))
	for _, t := range models.DrinkTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(t), Value: string(t)})
	}

	return &HydroCommand{
		BaseCommand: BaseCommand{
			Name:        "hydro",
			Description: "Track your water intake",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Log a drink",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Amount in ml",
							Required:    true,
							MinValue:    &minAmount,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "What you drank, water when omitted",
							Choices:     choices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show today's progress",
				},
			},
		},
		tracker:  trackerService,
		profiles: profiles,
		log:      log,
	}
}

// Handle processes a Discord interaction for the hydro command
func (c *HydroCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	return Respond(s, i, c.respond(context.Background(), interactionUserID(i), data.Options[0]))
}

// respond runs a subcommand for a Discord user and builds the reply
func (c *HydroCommand) respond(ctx context.Context, discordUserID string, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponseData {
	identity, err := resolveProfile(ctx, c.profiles, discordUserID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return &discordgo.InteractionResponseData{Content: notLinkedMessage, Flags: discordgo.MessageFlagsEphemeral}
		}
		c.log.Error("failed to resolve profile", zap.String("discord_id", discordUserID), zap.Error(err))
		return errorResponse("Something went wrong, try again later.")
	}

	switch sub.Name {
	case "log":
		return c.handleLog(ctx, identity, sub.Options)
	case "status":
		return c.handleStatus(ctx, identity)
	default:
		return errorResponse(fmt.Sprintf("Unknown subcommand %q", sub.Name))
	}
}

// handleLog handles the log subcommand
func (c *HydroCommand) handleLog(ctx context.Context, identity *models.Identity, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponseData {
	amount := 0
	drinkType := models.DrinkTypeWater

	for _, opt := range options {
		switch opt.Name {
		case "amount":
			amount = int(opt.IntValue())
		case "type":
			parsed, ok := models.ParseDrinkType(opt.StringValue())
			if !ok {
				return errorResponse(fmt.Sprintf("Unknown drink type %q", opt.StringValue()))
			}
			drinkType = parsed
		}
	}

	out, err := c.tracker.AddRecord(ctx, &tracker.AddRecordInput{
		Identity: *identity,
		Amount:   amount,
		Type:     drinkType,
	})
	if err != nil {
		var trackerErr tracker.TrackerError
		if errors.As(err, &trackerErr) {
			return errorResponse(trackerErr.Error())
		}
		c.log.Error("failed to log drink", zap.String("profile_id", identity.ProfileID), zap.Error(err))
		return errorResponse("Could not log your drink, try again later.")
	}

	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{renderLogged(out)}}
}

// handleStatus handles the status subcommand
func (c *HydroCommand) handleStatus(ctx context.Context, identity *models.Identity) *discordgo.InteractionResponseData {
	out, err := c.tracker.GetDailyStats(ctx, &tracker.GetDailyStatsInput{Identity: *identity})
	if err != nil {
		c.log.Error("failed to load stats", zap.String("profile_id", identity.ProfileID), zap.Error(err))
		return errorResponse("Could not load your stats, try again later.")
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{renderStatus(out)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

func resolveProfile(ctx context.Context, profiles profileRepo.Repository, discordUserID string) (*models.Identity, error) {
	if discordUserID == "" {
		return nil, profileRepo.ErrProfileNotFound
	}

	return profiles.GetProfileByDiscordID(ctx, &profileRepo.GetProfileByDiscordIDInput{DiscordID: discordUserID})
}
