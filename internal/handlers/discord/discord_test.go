package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	profileMocks "github.com/KirkDiggler/hydroflow/internal/repositories/profile/mocks"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/hydroflow/internal/services/tracker/mocks"
)

// fakeMessenger records the DMs it is asked to send
type fakeMessenger struct {
	recipients []string
	sent       []*discordgo.MessageSend
	err        error
}

func (f *fakeMessenger) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recipients = append(f.recipients, recipientID)
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, data)
	return &discordgo.Message{ChannelID: channelID}, nil
}

type DiscordTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProfiles *profileMocks.MockRepository
	mockTracker  *trackerMocks.MockService
	messenger    *fakeMessenger
	notifier     *Notifier
	command      *HydroCommand
	bot          *Bot
	ctx          context.Context

	identity *models.Identity
}

func (s *DiscordTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)
	s.messenger = &fakeMessenger{}
	s.ctx = context.Background()
	s.identity = &models.Identity{ProfileID: "profile-1", Kind: models.ProfileKindUser}

	notifier, err := NewNotifier(&NotifierConfig{Messenger: s.messenger, ProfileRepo: s.mockProfiles})
	s.Require().NoError(err)
	s.notifier = notifier

	s.command = NewHydroCommand(s.mockTracker, s.mockProfiles, nil)

	session, err := NewSession("test-token")
	s.Require().NoError(err)
	bot, err := New(&Config{Session: session, Tracker: s.mockTracker, ProfileRepo: s.mockProfiles})
	s.Require().NoError(err)
	s.bot = bot
}

func (s *DiscordTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscordTestSuite(t *testing.T) {
	suite.Run(t, new(DiscordTestSuite))
}

func (s *DiscordTestSuite) loggedOutput(amount int, drinkType models.DrinkType) *tracker.AddRecordOutput {
	stats := models.NewDailyStats("2025-04-19", 2000)
	record := &models.WaterRecord{ID: "rec-1", Amount: amount, Type: drinkType}
	stats.Prepend(record)
	return &tracker.AddRecordOutput{Record: record, Stats: stats, Synced: true, Streak: 1}
}

func (s *DiscordTestSuite) TestSendDeliversDMWithButtons() {
	s.mockProfiles.EXPECT().GetUser(s.ctx, &profileRepo.GetUserInput{ProfileID: "profile-1"}).
		Return(&models.User{Name: "Alex", DiscordID: "42"}, nil)

	err := s.notifier.Send(s.ctx, &notification.SystemNotification{
		ProfileID: "profile-1",
		Title:     "Time to Hydrate!",
		Body:      "Drink a glass of water",
		Actions:   models.ReminderActions,
	})
	s.Require().NoError(err)

	s.Equal([]string{"42"}, s.messenger.recipients)
	s.Require().Len(s.messenger.sent, 1)

	msg := s.messenger.sent[0]
	s.Equal("Time to Hydrate!", msg.Embeds[0].Title)
	s.Require().Len(msg.Components, 1)

	row := msg.Components[0].(discordgo.ActionsRow)
	s.Require().Len(row.Components, 2)
	s.Equal("hydro:drink", row.Components[0].(discordgo.Button).CustomID)
	s.Equal("hydro:close", row.Components[1].(discordgo.Button).CustomID)
}

func (s *DiscordTestSuite) TestSendWithoutLinkIsUnavailable() {
	s.mockProfiles.EXPECT().GetUser(s.ctx, gomock.Any()).Return(&models.User{Name: "Guest"}, nil)

	err := s.notifier.Send(s.ctx, &notification.SystemNotification{ProfileID: "profile-1"})
	s.ErrorIs(err, notification.ErrChannelUnavailable)
	s.Empty(s.messenger.sent)
}

func (s *DiscordTestSuite) TestSendUnknownUserIsUnavailable() {
	s.mockProfiles.EXPECT().GetUser(s.ctx, gomock.Any()).Return(nil, profileRepo.ErrUserNotFound)

	err := s.notifier.Send(s.ctx, &notification.SystemNotification{ProfileID: "profile-1"})
	s.ErrorIs(err, notification.ErrChannelUnavailable)
}

func (s *DiscordTestSuite) TestSendFailureIsReturned() {
	s.messenger.err = errors.New("discord down")
	s.mockProfiles.EXPECT().GetUser(s.ctx, gomock.Any()).Return(&models.User{DiscordID: "42"}, nil)

	err := s.notifier.Send(s.ctx, &notification.SystemNotification{ProfileID: "profile-1"})
	s.Require().Error(err)
	s.NotErrorIs(err, notification.ErrChannelUnavailable)
}

func (s *DiscordTestSuite) TestLogSubcommand() {
	s.mockProfiles.EXPECT().GetProfileByDiscordID(s.ctx, &profileRepo.GetProfileByDiscordIDInput{DiscordID: "42"}).
		Return(s.identity, nil)
	s.mockTracker.EXPECT().AddRecord(s.ctx, &tracker.AddRecordInput{
		Identity: *s.identity,
		Amount:   330,
		Type:     models.DrinkTypeTea,
	}).Return(s.loggedOutput(330, models.DrinkTypeTea), nil)

	data := s.command.respond(s.ctx, "42", &discordgo.ApplicationCommandInteractionDataOption{
		Name: "log",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "amount", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(330)},
			{Name: "type", Type: discordgo.ApplicationCommandOptionString, Value: "tea"},
		},
	})

	s.Require().Len(data.Embeds, 1)
	s.Equal("Logged 330 ml of Tea", data.Embeds[0].Title)
}

func (s *DiscordTestSuite) TestLogValidationError() {
	s.mockProfiles.EXPECT().GetProfileByDiscordID(s.ctx, gomock.Any()).Return(s.identity, nil)
	s.mockTracker.EXPECT().AddRecord(s.ctx, gomock.Any()).Return(nil, tracker.ErrInvalidAmount)

	data := s.command.respond(s.ctx, "42", &discordgo.ApplicationCommandInteractionDataOption{
		Name: "log",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "amount", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(0)},
		},
	})

	s.Equal("Error", data.Embeds[0].Title)
	s.Equal(tracker.ErrInvalidAmount.Error(), data.Embeds[0].Description)
}

func (s *DiscordTestSuite) TestStatusSubcommand() {
	stats := models.NewDailyStats("2025-04-19", 2000)
	s.mockProfiles.EXPECT().GetProfileByDiscordID(s.ctx, gomock.Any()).Return(s.identity, nil)
	s.mockTracker.EXPECT().GetDailyStats(s.ctx, &tracker.GetDailyStatsInput{Identity: *s.identity}).
		Return(&tracker.GetDailyStatsOutput{Stats: stats, Total: 1000, Percentage: 50, Remaining: 1000}, nil)

	data := s.command.respond(s.ctx, "42", &discordgo.ApplicationCommandInteractionDataOption{Name: "status"})

	s.Require().Len(data.Embeds, 1)
	s.Equal("🟦🟦🟦🟦🟦⬜⬜⬜⬜⬜ 50%", data.Embeds[0].Description)
	s.Equal("1000 ml", data.Embeds[0].Fields[0].Value)
}

func (s *DiscordTestSuite) TestUnlinkedUser() {
	s.mockProfiles.EXPECT().GetProfileByDiscordID(s.ctx, gomock.Any()).Return(nil, profileRepo.ErrProfileNotFound)

	data := s.command.respond(s.ctx, "99", &discordgo.ApplicationCommandInteractionDataOption{Name: "status"})
	s.Equal(notLinkedMessage, data.Content)
}

func (s *DiscordTestSuite) TestDrinkButtonLogsWater() {
	s.mockProfiles.EXPECT().GetProfileByDiscordID(s.ctx, &profileRepo.GetProfileByDiscordIDInput{DiscordID: "42"}).
		Return(s.identity, nil)
	s.mockTracker.EXPECT().AddRecord(s.ctx, &tracker.AddRecordInput{
		Identity: *s.identity,
		Amount:   DrinkButtonAmount,
		Type:     models.DrinkTypeWater,
	}).Return(s.loggedOutput(DrinkButtonAmount, models.DrinkTypeWater), nil)

	resp := s.bot.actionResponse(s.ctx, "42", models.ActionDrink)

	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Empty(resp.Data.Components)
}

func (s *DiscordTestSuite) TestDismissButton() {
	resp := s.bot.actionResponse(s.ctx, "42", models.ActionDismiss)
	s.Equal("Reminder dismissed.", resp.Data.Content)
}

func (s *DiscordTestSuite) TestParseActionCustomID() {
	action, ok := parseActionCustomID("hydro:drink")
	s.True(ok)
	s.Equal(models.ActionDrink, action)

	_, ok = parseActionCustomID("join_game")
	s.False(ok)
}

func (s *DiscordTestSuite) TestProgressBarClamps() {
	s.Equal("🟦🟦🟦🟦🟦🟦🟦🟦🟦🟦 130%", progressBar(130))
	s.Equal("⬜⬜⬜⬜⬜⬜⬜⬜⬜⬜ 0%", progressBar(0))
}
