package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/common/uuid"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/KirkDiggler/hydroflow/internal/repositories/cloud"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

type service struct {
	historyDays int

	dailyStatsRepo dailyStatsRepo.Repository
	settingsRepo   settingsRepo.Repository
	cloudRepo      cloud.Repository

	achievements achievement.Service
	notifier     notification.Service
	messages     messaging.Service

	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           *zap.Logger
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DailyStatsRepo == nil {
		return nil, ErrNilDailyStatsRepo
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Achievements == nil {
		return nil, ErrNilAchievements
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	historyDays := cfg.HistoryDays
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		historyDays:    historyDays,
		dailyStatsRepo: cfg.DailyStatsRepo,
		settingsRepo:   cfg.SettingsRepo,
		cloudRepo:      cfg.CloudRepo,
		achievements:   cfg.Achievements,
		notifier:       cfg.Notifier,
		messages:       cfg.Messages,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		log:            log,
	}, nil
}

// AddRecord logs a drink on today's stats. The local write is authoritative: a failed
// remote write is reported through a toast and Synced=false, never as an error
func (s *service) AddRecord(ctx context.Context, input *AddRecordInput) (*AddRecordOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if !input.Type.IsValid() {
		return nil, ErrInvalidDrinkType
	}

	identity := input.Identity
	settings, err := s.loadSettings(ctx, identity.ProfileID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := clock.DateKey(now)

	stats, err := s.loadLocalDay(ctx, identity.ProfileID, today, settings.DailyGoal)
	if err != nil {
		return nil, err
	}

	record := &models.WaterRecord{
		ID:        s.uuidGenerator.NewUUID(),
		Amount:    input.Amount,
		Type:      input.Type,
		Timestamp: now,
		Note:      input.Note,
	}
	stats.Prepend(record)

	if err := s.saveLocalDay(ctx, identity.ProfileID, stats); err != nil {
		return nil, err
	}

	s.playSound(ctx, identity.ProfileID, models.SoundWater)

	synced := true
	if s.remoteEnabled(identity) {
		err := s.cloudRepo.SaveRecord(ctx, &cloud.SaveRecordInput{
			UserID: identity.ProfileID,
			Date:   today,
			Record: record,
		})
		if err != nil {
			synced = false
			s.log.Warn("remote record save failed, kept locally",
				zap.String("profile_id", identity.ProfileID),
				zap.String("record_id", record.ID),
				zap.Error(err))
			s.toastSyncFailed(ctx, identity.ProfileID)
		}
	}

	goalReached := stats.GoalReached()
	if goalReached {
		s.playSound(ctx, identity.ProfileID, models.SoundSuccess)
		s.notifyGoalReached(ctx, identity.ProfileID)
	}

	output := &AddRecordOutput{
		Record:      record,
		Stats:       stats,
		GoalReached: goalReached,
		Synced:      synced,
	}

	if eval := s.evaluate(ctx, identity.ProfileID, stats); eval != nil {
		output.Streak = eval.Streak
		output.NewlyUnlocked = eval.NewlyUnlocked
	}

	return output, nil
}

// DeleteRecord removes exactly one record, leaving the order of the rest untouched
func (s *service) DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	if input.RecordID == "" {
		return nil, ErrRecordNotFound
	}

	identity := input.Identity
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, identity.ProfileID)
	if err != nil {
		return nil, err
	}

	stats, _, err := s.readDay(ctx, identity, date, settings.DailyGoal)
	if err != nil {
		return nil, err
	}

	if !stats.Remove(input.RecordID) {
		return nil, ErrRecordNotFound
	}

	if err := s.saveLocalDay(ctx, identity.ProfileID, stats); err != nil {
		return nil, err
	}

	if s.remoteEnabled(identity) {
		err := s.cloudRepo.DeleteRecord(ctx, &cloud.DeleteRecordInput{
			UserID:   identity.ProfileID,
			RecordID: input.RecordID,
		})
		if err != nil {
			s.log.Warn("remote record delete failed",
				zap.String("profile_id", identity.ProfileID),
				zap.String("record_id", input.RecordID),
				zap.Error(err))
		}
	}

	output := &DeleteRecordOutput{Stats: stats}
	if eval := s.evaluate(ctx, identity.ProfileID, stats); eval != nil {
		output.Streak = eval.Streak
	}

	return output, nil
}

func (s *service) remoteEnabled(identity models.Identity) bool {
	return s.cloudRepo != nil && identity.SignedIn()
}

// resolveDate defaults an empty date to today and validates the rest
func (s *service) resolveDate(date string) (string, error) {
	if date == "" {
		return clock.DateKey(s.clock.Now()), nil
	}

	if _, err := time.Parse(clock.DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}

// loadLocalDay reads a stored day, substituting an empty day when it is missing or unreadable
func (s *service) loadLocalDay(ctx context.Context, profileID, date string, goal int) (*models.DailyStats, error) {
	stats, err := s.dailyStatsRepo.GetDailyStats(ctx, &dailyStatsRepo.GetDailyStatsInput{
		ProfileID: profileID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dailyStatsRepo.ErrDailyStatsNotFound):
			return models.NewDailyStats(date, goal), nil
		case errors.Is(err, dailyStatsRepo.ErrMalformedDailyStats):
			s.log.Warn("unreadable daily stats, starting the day empty",
				zap.String("profile_id", profileID), zap.String("date", date))
			return models.NewDailyStats(date, goal), nil
		default:
			return nil, fmt.Errorf("failed to load daily stats: %w", err)
		}
	}

	if stats.Target <= 0 {
		stats.Target = goal
	}
	return stats, nil
}

func (s *service) saveLocalDay(ctx context.Context, profileID string, stats *models.DailyStats) error {
	err := s.dailyStatsRepo.SaveDailyStats(ctx, &dailyStatsRepo.SaveDailyStatsInput{
		ProfileID: profileID,
		Stats:     stats,
	})
	if err != nil {
		return fmt.Errorf("failed to save daily stats: %w", err)
	}
	return nil
}

// evaluate runs the achievement evaluator; its failures never fail a mutation
func (s *service) evaluate(ctx context.Context, profileID string, stats *models.DailyStats) *achievement.EvaluateOutput {
	out, err := s.achievements.Evaluate(ctx, &achievement.EvaluateInput{
		ProfileID: profileID,
		Stats:     stats,
	})
	if err != nil {
		s.log.Warn("achievement evaluation failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil
	}
	return out
}

func (s *service) playSound(ctx context.Context, profileID string, cue models.SoundCue) {
	if err := s.notifier.PlaySound(ctx, &notification.PlaySoundInput{
		ProfileID: profileID,
		Cue:       cue,
	}); err != nil {
		s.log.Warn("failed to publish sound", zap.String("cue", string(cue)), zap.Error(err))
	}
}

func (s *service) toastSyncFailed(ctx context.Context, profileID string) {
	msg, err := s.messages.GetSyncFailedMessage(ctx, &messaging.GetSyncFailedMessageInput{})
	if err != nil {
		s.log.Warn("failed to build sync message", zap.Error(err))
		return
	}

	if err := s.notifier.Toast(ctx, &notification.ToastInput{
		ProfileID: profileID,
		Title:     msg.Title,
		Message:   msg.Message,
	}); err != nil {
		s.log.Warn("failed to publish sync toast", zap.Error(err))
	}
}

func (s *service) notifyGoalReached(ctx context.Context, profileID string) {
	msg, err := s.messages.GetGoalReachedMessage(ctx, &messaging.GetGoalReachedMessageInput{})
	if err != nil {
		s.log.Warn("failed to build goal message", zap.Error(err))
		return
	}

	if _, err := s.notifier.Notify(ctx, &notification.NotifyInput{
		ProfileID: profileID,
		Title:     msg.Title,
		Body:      msg.Message,
	}); err != nil {
		s.log.Warn("failed to deliver goal notification", zap.String("profile_id", profileID), zap.Error(err))
	}
}
