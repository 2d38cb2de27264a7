package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	clockMocks "github.com/KirkDiggler/hydroflow/internal/common/clock/mocks"
	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/models"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
	notificationMocks "github.com/KirkDiggler/hydroflow/internal/services/notification/mocks"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	mr           *miniredis.Miniredis
	client       *redis.Client
	mockCtrl     *gomock.Controller
	mockClock    *clockMocks.MockClock
	mockNotifier *notificationMocks.MockService
	settingsRepo settingsRepo.Repository
	statsRepo    dailyStatsRepo.Repository
	service      *service
	ctx          context.Context

	now       time.Time
	profileID string
}

func (s *ReminderServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ks := keyspace.New("")
	s.settingsRepo, err = settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client, Keyspace: ks})
	s.Require().NoError(err)
	s.statsRepo, err = dailyStatsRepo.NewRedis(&dailyStatsRepo.Config{RedisClient: s.client, Keyspace: ks})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockNotifier = notificationMocks.NewMockService(s.mockCtrl)

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	messages, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	s.service, err = New(&Config{
		SettingsRepo:   s.settingsRepo,
		DailyStatsRepo: s.statsRepo,
		Notifier:       s.mockNotifier,
		Messages:       messages,
		Clock:          s.mockClock,
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.profileID = "profile-1"
	s.now = s.at(12, 0)
}

func (s *ReminderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}

func (s *ReminderServiceTestSuite) at(hour, minute int) time.Time {
	return time.Date(2025, 4, 19, hour, minute, 0, 0, time.UTC)
}

func (s *ReminderServiceTestSuite) saveSettings(mutate func(*models.UserSettings)) {
	settings := models.DefaultSettings()
	settings.NotificationsEnabled = true
	if mutate != nil {
		mutate(settings)
	}

	s.Require().NoError(s.settingsRepo.SaveSettings(s.ctx, &settingsRepo.SaveSettingsInput{
		ProfileID: s.profileID,
		Settings:  settings,
	}))
}

func (s *ReminderServiceTestSuite) logDrink(at time.Time) {
	stats := models.NewDailyStats(clock.DateKey(at), 2200)
	stats.Prepend(&models.WaterRecord{ID: "r1", Amount: 250, Type: models.DrinkTypeWater, Timestamp: at})
	s.Require().NoError(s.statsRepo.SaveDailyStats(s.ctx, &dailyStatsRepo.SaveDailyStatsInput{
		ProfileID: s.profileID,
		Stats:     stats,
	}))
}

func (s *ReminderServiceTestSuite) expectNotify(title, body string) *gomock.Call {
	return s.mockNotifier.EXPECT().Notify(s.ctx, &notification.NotifyInput{
		ProfileID: s.profileID,
		Title:     title,
		Body:      body,
		Actions:   models.ReminderActions,
	}).Return(&notification.NotifyOutput{Delivery: notification.DeliveryInApp}, nil)
}

func (s *ReminderServiceTestSuite) check() *CheckRemindersOutput {
	out, err := s.service.CheckReminders(s.ctx, &CheckRemindersInput{ProfileID: s.profileID})
	s.Require().NoError(err)
	return out
}

func (s *ReminderServiceTestSuite) TestDisabledNeverFires() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.NotificationsEnabled = false
		settings.ReminderType = models.ReminderTypeSpecific
	})

	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestMissingSettingsAreDisabled() {
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestSpecificTimeFiresOncePerMinute() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.ReminderType = models.ReminderTypeSpecific
	})
	s.expectNotify("Hydration Time!", "It's time for your scheduled water break. 💧")

	out := s.check()
	s.True(out.Fired)
	s.Equal(messaging.ReminderKindScheduled, out.Kind)
	s.Equal(notification.DeliveryInApp, out.Delivery)

	// Same minute, later second
	s.now = s.now.Add(30 * time.Second)
	s.False(s.check().Fired)

	s.now = s.at(12, 1)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestSpecificTimeFiresAgainNextDay() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.ReminderType = models.ReminderTypeSpecific
		settings.SpecificTimes = []string{"12:00"}
	})
	s.expectNotify("Hydration Time!", "It's time for your scheduled water break. 💧").Times(2)

	s.True(s.check().Fired)

	s.now = s.now.AddDate(0, 0, 1)
	s.True(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestSpecificTimeIgnoresBounds() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.ReminderType = models.ReminderTypeSpecific
		settings.SpecificTimes = []string{"06:30"}
	})
	s.expectNotify("Hydration Time!", "It's time for your scheduled water break. 💧")

	s.now = s.at(6, 30)
	s.True(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestMorningReminderOncePerDay() {
	s.saveSettings(nil)

	s.now = s.at(8, 30)
	s.False(s.check().Fired, "before wake time")

	s.expectNotify("Morning Hydration", "Start your day with a fresh glass of water! 🌊")
	s.now = s.at(9, 15)
	out := s.check()
	s.True(out.Fired)
	s.Equal(messaging.ReminderKindMorning, out.Kind)

	s.now = s.at(9, 16)
	s.False(s.check().Fired)

	s.now = s.at(15, 0)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestIntervalReminderRepeatsEveryMinuteWhileOverdue() {
	s.saveSettings(nil)
	s.logDrink(s.at(10, 0))

	s.now = s.at(11, 59)
	s.False(s.check().Fired)

	s.expectNotify("Time to hydrate!", "It's been a while since your last drink. 💧").Times(2)

	s.now = s.at(12, 0)
	out := s.check()
	s.True(out.Fired)
	s.Equal(messaging.ReminderKindInterval, out.Kind)

	s.now = s.at(12, 1)
	out = s.check()
	s.True(out.Fired)
	s.Equal(messaging.ReminderKindInterval, out.Kind)

	s.now = s.at(12, 1).Add(30 * time.Second)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestIntervalReminderStopsAfterNewDrink() {
	s.saveSettings(nil)
	s.logDrink(s.at(10, 0))

	s.expectNotify("Time to hydrate!", "It's been a while since your last drink. 💧")

	s.now = s.at(12, 0)
	s.True(s.check().Fired)

	s.logDrink(s.at(12, 0).Add(30 * time.Second))

	s.now = s.at(12, 1)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestIntervalUsesNewestRecord() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.ReminderIntervalMinutes = 60
	})

	stats := models.NewDailyStats(clock.DateKey(s.now), 2200)
	stats.Prepend(&models.WaterRecord{ID: "new", Amount: 250, Type: models.DrinkTypeWater, Timestamp: s.at(11, 30)})
	stats.Prepend(&models.WaterRecord{ID: "old", Amount: 250, Type: models.DrinkTypeTea, Timestamp: s.at(9, 30)})
	s.Require().NoError(s.statsRepo.SaveDailyStats(s.ctx, &dailyStatsRepo.SaveDailyStatsInput{
		ProfileID: s.profileID,
		Stats:     stats,
	}))

	s.now = s.at(12, 0)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestIntervalSilentAfterBedTime() {
	s.saveSettings(nil)
	s.logDrink(s.at(18, 0))

	s.now = s.at(23, 30)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestOvernightWindow() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.WakeUpTime = "20:00"
		settings.BedTime = "04:00"
		settings.ReminderIntervalMinutes = 30
	})
	s.logDrink(s.at(1, 0))

	s.expectNotify("Time to hydrate!", "It's been a while since your last drink. 💧")
	s.now = s.at(2, 0)
	s.True(s.check().Fired)

	s.now = s.at(12, 0)
	s.False(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestForgetClearsMarkers() {
	s.saveSettings(func(settings *models.UserSettings) {
		settings.ReminderType = models.ReminderTypeSpecific
	})
	s.expectNotify("Hydration Time!", "It's time for your scheduled water break. 💧").Times(2)

	s.True(s.check().Fired)
	s.service.Forget(s.profileID)
	s.True(s.check().Fired)
}

func (s *ReminderServiceTestSuite) TestEmptyProfileID() {
	_, err := s.service.CheckReminders(s.ctx, &CheckRemindersInput{})
	s.Equal(ErrEmptyProfileID, err)
}

func (s *ReminderServiceTestSuite) TestInWindow() {
	settings := models.DefaultSettings()

	s.False(s.service.inWindow(settings, s.at(8, 59)))
	s.True(s.service.inWindow(settings, s.at(9, 0)))
	s.True(s.service.inWindow(settings, s.at(22, 59)))
	s.False(s.service.inWindow(settings, s.at(23, 0)))

	settings.WakeUpTime = "bogus"
	s.True(s.service.inWindow(settings, s.at(3, 0)))
}
