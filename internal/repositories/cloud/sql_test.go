package cloud

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/hydroflow/internal/database"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLRepositoryTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *SQLRepositoryTestSuite) SetupTest() {
	db, err := database.NewDB(database.DriverSQLite, ":memory:")
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQL(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *SQLRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLRepositoryTestSuite))
}

func (s *SQLRepositoryTestSuite) saveRecord(userID, id string, amount int, ts time.Time) {
	err := s.repo.SaveRecord(s.ctx, &SaveRecordInput{
		UserID: userID,
		Date:   ts.Format("2006-01-02"),
		Record: &models.WaterRecord{
			ID:        id,
			Amount:    amount,
			Type:      models.DrinkTypeWater,
			Timestamp: ts,
		},
	})
	s.Require().NoError(err)
}

func (s *SQLRepositoryTestSuite) TestSaveAndGetDailyRecords() {
	s.saveRecord("user-1", "rec-1", 250, s.testNow.Add(-3*time.Hour))
	s.saveRecord("user-1", "rec-2", 500, s.testNow)
	s.saveRecord("user-1", "rec-3", 300, s.testNow.Add(-time.Hour))
	s.saveRecord("user-1", "rec-4", 300, s.testNow.Add(-24*time.Hour))
	s.saveRecord("user-2", "rec-5", 300, s.testNow)

	out, err := s.repo.GetDailyRecords(s.ctx, &GetDailyRecordsInput{UserID: "user-1", Date: "2025-04-05"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)

	// Newest first
	s.Equal("rec-2", out.Records[0].ID)
	s.Equal("rec-3", out.Records[1].ID)
	s.Equal("rec-1", out.Records[2].ID)
	s.True(s.testNow.Equal(out.Records[0].Timestamp))
	s.Equal(models.DrinkTypeWater, out.Records[0].Type)
}

func (s *SQLRepositoryTestSuite) TestDeleteRecord() {
	s.saveRecord("user-1", "rec-1", 250, s.testNow)

	// Another user's id does not match
	err := s.repo.DeleteRecord(s.ctx, &DeleteRecordInput{UserID: "user-2", RecordID: "rec-1"})
	s.True(errors.Is(err, ErrRecordNotFound))

	err = s.repo.DeleteRecord(s.ctx, &DeleteRecordInput{UserID: "user-1", RecordID: "rec-1"})
	s.Require().NoError(err)

	out, err := s.repo.GetDailyRecords(s.ctx, &GetDailyRecordsInput{UserID: "user-1", Date: "2025-04-05"})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *SQLRepositoryTestSuite) TestUpsertAndGetSettings() {
	_, err := s.repo.GetSettings(s.ctx, &GetSettingsInput{UserID: "user-1"})
	s.True(errors.Is(err, ErrSettingsNotFound))

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = true
	s.Require().NoError(s.repo.UpsertSettings(s.ctx, &UpsertSettingsInput{UserID: "user-1", Settings: settings}))

	got, err := s.repo.GetSettings(s.ctx, &GetSettingsInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(settings, got)

	// Second write updates in place
	settings.DailyGoal = 3100
	settings.ReminderType = models.ReminderTypeSpecific
	settings.SpecificTimes = []string{"07:30", "19:45"}
	s.Require().NoError(s.repo.UpsertSettings(s.ctx, &UpsertSettingsInput{UserID: "user-1", Settings: settings}))

	got, err = s.repo.GetSettings(s.ctx, &GetSettingsInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(settings, got)
}

func (s *SQLRepositoryTestSuite) TestCorruptSpecificTimesFallsBack() {
	_, err := s.db.Exec(`INSERT INTO user_settings VALUES ('user-1', 2000, 60, 1, '08:00', '22:00', 'specific', 'nope')`)
	s.Require().NoError(err)

	got, err := s.repo.GetSettings(s.ctx, &GetSettingsInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.DefaultSettings().SpecificTimes, got.SpecificTimes)
	s.Equal(2000, got.DailyGoal)
	s.True(got.NotificationsEnabled)
}
