package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	key    string
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Keyspace:    keyspace.New(""),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.key = "profile-1:hydroflow_settings"
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSettings() {
	settings := models.DefaultSettings()
	settings.DailyGoal = 3000
	settings.ReminderType = models.ReminderTypeSpecific
	settings.SpecificTimes = []string{"08:15"}

	err := s.repo.SaveSettings(context.Background(), &SaveSettingsInput{
		ProfileID: "profile-1",
		Settings:  settings,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Equal(settings, got)
}

func (s *RedisRepositoryTestSuite) TestGetMissingSettings() {
	_, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{ProfileID: "profile-1"})
	s.True(errors.Is(err, ErrSettingsNotFound))
}

func (s *RedisRepositoryTestSuite) TestPartialObjectKeepsDefaults() {
	s.Require().NoError(s.mr.Set(s.key, `{"dailyGoal":2500,"notificationsEnabled":true}`))

	got, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{ProfileID: "profile-1"})
	s.Require().NoError(err)

	expected := models.DefaultSettings()
	expected.DailyGoal = 2500
	expected.NotificationsEnabled = true
	s.Equal(expected, got)
}

func (s *RedisRepositoryTestSuite) TestNonArraySpecificTimesKeepsDefault() {
	s.Require().NoError(s.mr.Set(s.key, `{"specificTimes":"09:00","reminderType":"sometimes","bedTime":null}`))

	got, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Equal(models.DefaultSettings(), got)
}

func (s *RedisRepositoryTestSuite) TestMalformedSettings() {
	s.Require().NoError(s.mr.Set(s.key, `[1,2,3]`))

	_, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{ProfileID: "profile-1"})
	s.True(errors.Is(err, ErrMalformedSettings))
}
