package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	profileMocks "github.com/KirkDiggler/hydroflow/internal/repositories/profile/mocks"
	"github.com/KirkDiggler/hydroflow/internal/services/reminder"
	reminderMocks "github.com/KirkDiggler/hydroflow/internal/services/reminder/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockProfiles  *profileMocks.MockRepository
	mockReminders *reminderMocks.MockService
	scheduler     *Scheduler
	ctx           context.Context
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockReminders = reminderMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	sched, err := New(&Config{
		ProfileRepo: s.mockProfiles,
		Reminders:   s.mockReminders,
	})
	s.Require().NoError(err)
	s.scheduler = sched
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestTickChecksEveryProfile() {
	s.mockProfiles.EXPECT().ListProfiles(s.ctx, &profileRepo.ListProfilesInput{}).Return(&profileRepo.ListProfilesOutput{
		Profiles: []*models.Identity{
			{ProfileID: "a", Kind: models.ProfileKindGuest},
			{ProfileID: "b", Kind: models.ProfileKindUser},
			{ProfileID: "c", Kind: models.ProfileKindUser},
		},
	}, nil)

	s.mockReminders.EXPECT().CheckReminders(s.ctx, &reminder.CheckRemindersInput{ProfileID: "a"}).
		Return(&reminder.CheckRemindersOutput{Fired: true}, nil)
	s.mockReminders.EXPECT().CheckReminders(s.ctx, &reminder.CheckRemindersInput{ProfileID: "b"}).
		Return(nil, errors.New("redis timeout"))
	s.mockReminders.EXPECT().CheckReminders(s.ctx, &reminder.CheckRemindersInput{ProfileID: "c"}).
		Return(&reminder.CheckRemindersOutput{}, nil)

	fired, err := s.scheduler.Tick(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, fired)
}

func (s *SchedulerTestSuite) TestTickListFailure() {
	s.mockProfiles.EXPECT().ListProfiles(s.ctx, gomock.Any()).Return(nil, errors.New("down"))

	_, err := s.scheduler.Tick(s.ctx)
	s.Error(err)
}

func (s *SchedulerTestSuite) TestTickStopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockProfiles.EXPECT().ListProfiles(ctx, gomock.Any()).Return(&profileRepo.ListProfilesOutput{
		Profiles: []*models.Identity{{ProfileID: "a"}},
	}, nil)

	_, err := s.scheduler.Tick(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *SchedulerTestSuite) TestNewRejectsBadSchedule() {
	_, err := New(&Config{
		ProfileRepo: s.mockProfiles,
		Reminders:   s.mockReminders,
		Schedule:    "every now and then",
	})
	s.Error(err)

	_, err = New(&Config{Reminders: s.mockReminders})
	s.Equal(ErrNilProfileRepo, err)
}

func (s *SchedulerTestSuite) TestStartStop() {
	s.scheduler.Start()
	<-s.scheduler.Stop().Done()
}
