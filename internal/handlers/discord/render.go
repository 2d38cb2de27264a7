package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

// actionPrefix namespaces the custom IDs of reminder buttons
const actionPrefix = "hydro:"

func actionCustomID(action string) string {
	return actionPrefix + action
}

// parseActionCustomID returns the action of a reminder button
func parseActionCustomID(customID string) (string, bool) {
	if !strings.HasPrefix(customID, actionPrefix) {
		return "", false
	}
	return strings.TrimPrefix(customID, actionPrefix), true
}

// renderReminder builds the DM for a notification, one button per action
func renderReminder(n *notification.SystemNotification) *discordgo.MessageSend {
	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       n.Title,
			Description: n.Body,
			Color:       colorWater,
		}},
	}

	if len(n.Actions) == 0 {
		return msg
	}

	buttons := make([]discordgo.MessageComponent, 0, len(n.Actions))
	for _, action := range n.Actions {
		style := discordgo.SecondaryButton
		if action.Action == models.ActionDrink {
			style = discordgo.PrimaryButton
		}

		buttons = append(buttons, discordgo.Button{
			Label:    action.Title,
			Style:    style,
			CustomID: actionCustomID(action.Action),
		})
	}

	msg.Components = []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	return msg
}

// renderStatus builds the embed for a day's progress
func renderStatus(out *tracker.GetDailyStatsOutput) *discordgo.MessageEmbed {
	color := colorWater
	if out.Stats.GoalReached() {
		color = colorGoal
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💧 Hydration for %s", out.Stats.Date),
		Description: progressBar(out.Percentage),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total", Value: fmt.Sprintf("%d ml", out.Total), Inline: true},
			{Name: "Goal", Value: fmt.Sprintf("%d ml", out.Stats.EffectiveTarget()), Inline: true},
			{Name: "Remaining", Value: fmt.Sprintf("%d ml", out.Remaining), Inline: true},
			{Name: "Water purity", Value: fmt.Sprintf("%d%%", out.WaterPurity), Inline: true},
			{Name: "Drinks", Value: fmt.Sprintf("%d", len(out.Stats.Records)), Inline: true},
		},
	}
}

// renderLogged builds the reply to a logged drink
func renderLogged(out *tracker.AddRecordOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Logged %d ml of %s", out.Record.Amount, out.Record.Type),
		Description: progressBar(out.Stats.Percentage()),
		Color:       colorWater,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Today", Value: fmt.Sprintf("%d / %d ml", out.Stats.Total(), out.Stats.EffectiveTarget()), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d days", out.Streak), Inline: true},
		},
	}

	if out.GoalReached {
		embed.Color = colorGoal
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Daily goal reached! 🎉"}
	}

	for _, a := range out.NewlyUnlocked {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Badge Unlocked!",
			Value: fmt.Sprintf("%s %s", a.Icon, a.Title),
		})
	}

	return embed
}

// progressBar renders ten segments for a percentage
func progressBar(percentage int) string {
	filled := percentage / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("🟦", filled) + strings.Repeat("⬜", 10-filled) + fmt.Sprintf(" %d%%", percentage)
}
