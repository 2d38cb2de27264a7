package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/KirkDiggler/hydroflow/internal/repositories/cloud"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
)

// MaxHistoryDays bounds GetHistory
const MaxHistoryDays = 90

// StatisticsDays is the window GetStatistics aggregates
const StatisticsDays = 7

// GetDailyStats returns one day. Signed in profiles read the remote records and cache
// them locally, falling back to the local copy when the remote read fails
func (s *service) GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*GetDailyStatsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	stats, source, err := s.readDay(ctx, input.Identity, date, settings.DailyGoal)
	if err != nil {
		return nil, err
	}

	return &GetDailyStatsOutput{
		Stats:       stats,
		Total:       stats.Total(),
		Percentage:  stats.Percentage(),
		Remaining:   stats.Remaining(),
		WaterPurity: stats.WaterPurity(),
		Source:      source,
	}, nil
}

// GetHistory returns the trailing days ending today, oldest first. Signed in profiles
// read each day remotely and skip the days that fail; guests get their stored days plus today
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	days := input.Days
	if days <= 0 {
		days = s.historyDays
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}

	settings, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := clock.DateKey(now)

	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, clock.DaysBack(now, i))
	}

	local, err := s.dailyStatsRepo.GetDailyStatsRange(ctx, &dailyStatsRepo.GetDailyStatsRangeInput{
		ProfileID: input.Identity.ProfileID,
		Dates:     dates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	history := make([]*models.DailyStats, 0, days)
	for _, date := range dates {
		stored := local.Stats[date]

		if s.remoteEnabled(input.Identity) {
			out, err := s.cloudRepo.GetDailyRecords(ctx, &cloud.GetDailyRecordsInput{
				UserID: input.Identity.ProfileID,
				Date:   date,
			})
			if err != nil {
				s.log.Warn("remote history read failed, skipping day",
					zap.String("profile_id", input.Identity.ProfileID),
					zap.String("date", date),
					zap.Error(err))
				continue
			}

			day := models.NewDailyStats(date, settings.DailyGoal)
			if stored != nil && stored.Target > 0 {
				day.Target = stored.Target
			}
			day.Records = out.Records
			history = append(history, day)
			continue
		}

		switch {
		case stored != nil:
			if stored.Target <= 0 {
				stored.Target = settings.DailyGoal
			}
			history = append(history, stored)
		case date == today:
			history = append(history, models.NewDailyStats(date, settings.DailyGoal))
		}
	}

	return &GetHistoryOutput{Days: history}, nil
}

// GetStatistics aggregates the trailing week the way the statistics screen shows it
func (s *service) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	history, err := s.GetHistory(ctx, &GetHistoryInput{
		Identity: input.Identity,
		Days:     StatisticsDays,
	})
	if err != nil {
		return nil, err
	}

	output := &GetStatisticsOutput{
		Week:         make([]*DayTotal, 0, len(history.Days)),
		Distribution: make(map[models.DrinkType]int),
	}

	for _, day := range history.Days {
		total := DayTotal{
			Date:        day.Date,
			Weekday:     weekday(day.Date),
			Total:       day.Total(),
			Target:      day.EffectiveTarget(),
			GoalReached: day.GoalReached(),
		}
		output.Week = append(output.Week, &total)
		output.WeeklyTotal += total.Total

		if total.Total > 0 && (output.BestDay == nil || total.Total > output.BestDay.Total) {
			output.BestDay = &total
		}

		for _, r := range day.Records {
			output.Distribution[r.Type] += r.Amount
		}
	}

	if len(output.Week) > 0 {
		output.DailyAverage = output.WeeklyTotal / len(output.Week)
	}

	achievements, err := s.achievements.GetAchievements(ctx, &achievement.GetAchievementsInput{
		ProfileID: input.Identity.ProfileID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	output.Streak = achievements.Streak
	output.UnlockedCount = achievements.UnlockedCount
	output.AchievementsCount = len(achievements.Achievements)

	return output, nil
}

// readDay returns a day and where it came from
func (s *service) readDay(ctx context.Context, identity models.Identity, date string, goal int) (*models.DailyStats, Source, error) {
	local, err := s.loadLocalDay(ctx, identity.ProfileID, date, goal)
	if err != nil {
		return nil, "", err
	}

	if !s.remoteEnabled(identity) {
		return local, SourceLocal, nil
	}

	out, err := s.cloudRepo.GetDailyRecords(ctx, &cloud.GetDailyRecordsInput{
		UserID: identity.ProfileID,
		Date:   date,
	})
	if err != nil {
		s.log.Warn("remote read failed, using local copy",
			zap.String("profile_id", identity.ProfileID),
			zap.String("date", date),
			zap.Error(err))
		return local, SourceLocal, nil
	}

	remote := *local
	remote.Records = out.Records
	if remote.Records == nil {
		remote.Records = []*models.WaterRecord{}
	}

	if err := s.saveLocalDay(ctx, identity.ProfileID, &remote); err != nil {
		s.log.Warn("failed to cache remote day locally", zap.String("date", date), zap.Error(err))
	}

	return &remote, SourceRemote, nil
}

func weekday(date string) string {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
