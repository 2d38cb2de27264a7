package messaging

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestReminderMessages() {
	cases := map[ReminderKind]string{
		ReminderKindScheduled: "Hydration Time!",
		ReminderKindInterval:  "Time to hydrate!",
		ReminderKindMorning:   "Morning Hydration",
	}

	for kind, title := range cases {
		out, err := s.service.GetReminderMessage(s.ctx, &GetReminderMessageInput{Kind: kind})
		s.Require().NoError(err)
		s.Equal(title, out.Title)
		s.NotEmpty(out.Message)
	}

	_, err := s.service.GetReminderMessage(s.ctx, &GetReminderMessageInput{Kind: "hourly"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestBadgeUnlockedMessage() {
	out, err := s.service.GetBadgeUnlockedMessage(s.ctx, &GetBadgeUnlockedMessageInput{
		Achievement: models.DefaultAchievements()[2],
	})
	s.Require().NoError(err)
	s.Equal("Badge Unlocked!", out.Title)
	s.Equal("You earned the On Fire achievement! 🔥", out.Message)
}

func (s *MessagingServiceTestSuite) TestFixedCopy() {
	goal, err := s.service.GetGoalReachedMessage(s.ctx, &GetGoalReachedMessageInput{})
	s.Require().NoError(err)
	s.Equal("Goal Reached!", goal.Title)

	sync, err := s.service.GetSyncFailedMessage(s.ctx, &GetSyncFailedMessageInput{})
	s.Require().NoError(err)
	s.Equal("Local Sync Only", sync.Title)
	s.Equal("Couldn't save to cloud. Record stored locally.", sync.Message)
}

func (s *MessagingServiceTestSuite) TestProgressMessageTone() {
	out, err := s.service.GetProgressMessage(s.ctx, &GetProgressMessageInput{Percentage: 100, Streak: 4})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, out.Tone)
	s.True(strings.HasSuffix(out.Message, "4-day streak!"))

	out, err = s.service.GetProgressMessage(s.ctx, &GetProgressMessageInput{Percentage: 0})
	s.Require().NoError(err)
	s.Equal(ToneNeutral, out.Tone)
}
