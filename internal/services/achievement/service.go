package achievement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/models"
	achievementRepo "github.com/KirkDiggler/hydroflow/internal/repositories/achievement"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

type service struct {
	dailyStatsRepo  dailyStatsRepo.Repository
	achievementRepo achievementRepo.Repository
	notifier        notification.Service
	messages        messaging.Service
	clock           clock.Clock
	log             *zap.Logger
}

// New creates a new achievement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DailyStatsRepo == nil {
		return nil, ErrNilDailyStatsRepo
	}

	if cfg.AchievementRepo == nil {
		return nil, ErrNilAchievementRepo
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

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		dailyStatsRepo:  cfg.DailyStatsRepo,
		achievementRepo: cfg.AchievementRepo,
		notifier:        cfg.Notifier,
		messages:        cfg.Messages,
		clock:           cfg.Clock,
		log:             log,
	}, nil
}

// ComputeStreak counts consecutive qualifying days scanning backward from now.
// Today is exempt: missing or below target it neither counts nor breaks the streak.
// Any earlier day that is missing or below its target ends the scan
func ComputeStreak(days map[string]*models.DailyStats, now time.Time) int {
	streak := 0
	for i := 0; i < StreakWindowDays; i++ {
		stats, ok := days[clock.DaysBack(now, i)]
		if !ok || stats == nil {
			if i == 0 {
				continue
			}
			break
		}

		if stats.GoalReached() {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Evaluate recomputes the streak and flips newly satisfied achievements.
// Only one unlock toast is raised per call, for the last entry unlocked in catalog order
func (s *service) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	now := s.clock.Now()

	days, err := s.loadWindow(ctx, input.ProfileID, now)
	if err != nil {
		return nil, err
	}

	streak := ComputeStreak(days, now)

	stats := input.Stats
	if stats == nil {
		today := clock.DateKey(now)
		stats = days[today]
		if stats == nil {
			stats = models.NewDailyStats(today, models.FallbackTarget)
		}
	}

	achievements := s.loadAchievements(ctx, input.ProfileID)

	satisfied := map[models.AchievementID]bool{
		models.AchievementFirstSip:    len(stats.Records) > 0,
		models.AchievementGoalReached: stats.GoalReached(),
		models.AchievementStreak3:     streak >= 3,
		models.AchievementStreak7:     streak >= 7,
		models.AchievementEarlyBird:   stats.HasRecordBefore(EarlyBirdHour, now.Location()),
	}

	var newly []*models.Achievement
	for _, a := range achievements {
		if a.Unlocked || !satisfied[a.ID] {
			continue
		}

		unlockedAt := now
		a.Unlocked = true
		a.UnlockedAt = &unlockedAt
		newly = append(newly, a)
	}

	if len(newly) > 0 {
		err := s.achievementRepo.SaveAchievements(ctx, &achievementRepo.SaveAchievementsInput{
			ProfileID:    input.ProfileID,
			Achievements: achievements,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save achievements: %w", err)
		}

		s.announce(ctx, input.ProfileID, newly[len(newly)-1])
	}

	return &EvaluateOutput{
		Streak:        streak,
		Achievements:  achievements,
		NewlyUnlocked: newly,
	}, nil
}

// GetAchievements returns the catalog with the profile's unlock state
func (s *service) GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	streak, err := s.GetStreak(ctx, &GetStreakInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, err
	}

	achievements := s.loadAchievements(ctx, input.ProfileID)

	return &GetAchievementsOutput{
		Achievements:  achievements,
		UnlockedCount: models.CountUnlocked(achievements),
		Streak:        streak.Streak,
	}, nil
}

// GetStreak returns the current streak
func (s *service) GetStreak(ctx context.Context, input *GetStreakInput) (*GetStreakOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	now := s.clock.Now()
	days, err := s.loadWindow(ctx, input.ProfileID, now)
	if err != nil {
		return nil, err
	}

	return &GetStreakOutput{
		Streak: ComputeStreak(days, now),
	}, nil
}

func (s *service) loadWindow(ctx context.Context, profileID string, now time.Time) (map[string]*models.DailyStats, error) {
	dates := make([]string, StreakWindowDays)
	for i := range dates {
		dates[i] = clock.DaysBack(now, i)
	}

	out, err := s.dailyStatsRepo.GetDailyStatsRange(ctx, &dailyStatsRepo.GetDailyStatsRangeInput{
		ProfileID: profileID,
		Dates:     dates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load streak window: %w", err)
	}

	return out.Stats, nil
}

// loadAchievements substitutes the locked catalog for missing or unreadable state
func (s *service) loadAchievements(ctx context.Context, profileID string) []*models.Achievement {
	achievements, err := s.achievementRepo.GetAchievements(ctx, &achievementRepo.GetAchievementsInput{
		ProfileID: profileID,
	})
	if err == nil {
		return achievements
	}

	if !errors.Is(err, achievementRepo.ErrAchievementsNotFound) {
		s.log.Warn("failed to load achievements, using locked catalog",
			zap.String("profile_id", profileID), zap.Error(err))
	}

	return models.DefaultAchievements()
}

func (s *service) announce(ctx context.Context, profileID string, a *models.Achievement) {
	msg, err := s.messages.GetBadgeUnlockedMessage(ctx, &messaging.GetBadgeUnlockedMessageInput{
		Achievement: a,
	})
	if err != nil {
		s.log.Warn("failed to build badge message", zap.Error(err))
		return
	}

	if err := s.notifier.Toast(ctx, &notification.ToastInput{
		ProfileID: profileID,
		Title:     msg.Title,
		Message:   msg.Message,
	}); err != nil {
		s.log.Warn("failed to publish badge toast", zap.String("profile_id", profileID), zap.Error(err))
	}

	if err := s.notifier.PlaySound(ctx, &notification.PlaySoundInput{
		ProfileID: profileID,
		Cue:       models.SoundSuccess,
	}); err != nil {
		s.log.Warn("failed to publish badge sound", zap.String("profile_id", profileID), zap.Error(err))
	}
}
