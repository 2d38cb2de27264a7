package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/KirkDiggler/hydroflow/internal/repositories/cloud"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
)

const (
	// mlPerKg is the base intake per kilogram of body weight
	mlPerKg = 35

	mediumActivityBonus = 400
	highActivityBonus   = 800
	maleBonus           = 300
)

func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	settings, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Settings: settings}, nil
}

// UpdateSettings applies a field level merge. Fields absent from the patch keep their value
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	if err := validatePatch(input.Patch); err != nil {
		return nil, err
	}

	current, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	if input.Patch.IsEmpty() {
		return &UpdateSettingsOutput{Settings: current}, nil
	}

	updated := input.Patch.Apply(current)
	if err := s.persistSettings(ctx, input.Identity, updated); err != nil {
		return nil, err
	}

	if updated.DailyGoal != current.DailyGoal {
		s.retargetToday(ctx, input.Identity.ProfileID, updated.DailyGoal)
	}

	return &UpdateSettingsOutput{Settings: updated}, nil
}

// AddSpecificTime appends a reminder time; adding an existing time changes nothing
func (s *service) AddSpecificTime(ctx context.Context, input *AddSpecificTimeInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	if !validTime(input.Time) {
		return nil, ErrInvalidTime
	}

	settings, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	if settings.HasSpecificTime(input.Time) {
		return &UpdateSettingsOutput{Settings: settings}, nil
	}

	settings.SpecificTimes = append(settings.SpecificTimes, input.Time)
	if err := s.persistSettings(ctx, input.Identity, settings); err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}

// RemoveSpecificTime drops a reminder time; removing an unknown time changes nothing
func (s *service) RemoveSpecificTime(ctx context.Context, input *RemoveSpecificTimeInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	settings, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	if !settings.HasSpecificTime(input.Time) {
		return &UpdateSettingsOutput{Settings: settings}, nil
	}

	settings.SpecificTimes = slices.DeleteFunc(settings.SpecificTimes, func(t string) bool {
		return t == input.Time
	})
	if err := s.persistSettings(ctx, input.Identity, settings); err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}

// CalculateGoal suggests a goal of 35 ml per kg plus activity and gender bonuses,
// rounded to the nearest 100 ml
func (s *service) CalculateGoal(ctx context.Context, input *CalculateGoalInput) (*CalculateGoalOutput, error) {
	if input == nil || input.WeightKg <= 0 || math.IsNaN(input.WeightKg) || math.IsInf(input.WeightKg, 0) {
		return nil, ErrInvalidWeight
	}

	goal := input.WeightKg * mlPerKg

	switch input.Activity {
	case ActivityLow:
	case ActivityMedium:
		goal += mediumActivityBonus
	case ActivityHigh:
		goal += highActivityBonus
	default:
		return nil, ErrInvalidActivity
	}

	switch input.Gender {
	case GenderMale:
		goal += maleBonus
	case GenderFemale:
	default:
		return nil, ErrInvalidGender
	}

	return &CalculateGoalOutput{
		DailyGoal: int(math.Round(goal/100) * 100),
	}, nil
}

// LoadRemoteSettings runs on sign in: a remote settings row replaces the local settings
func (s *service) LoadRemoteSettings(ctx context.Context, input *LoadRemoteSettingsInput) (*LoadRemoteSettingsOutput, error) {
	if input == nil || input.Identity.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	local, err := s.loadSettings(ctx, input.Identity.ProfileID)
	if err != nil {
		return nil, err
	}

	if !s.remoteEnabled(input.Identity) {
		return &LoadRemoteSettingsOutput{Settings: local}, nil
	}

	remote, err := s.cloudRepo.GetSettings(ctx, &cloud.GetSettingsInput{UserID: input.Identity.ProfileID})
	if err != nil {
		if !errors.Is(err, cloud.ErrSettingsNotFound) {
			s.log.Warn("remote settings read failed, keeping local settings",
				zap.String("profile_id", input.Identity.ProfileID), zap.Error(err))
		}
		return &LoadRemoteSettingsOutput{Settings: local}, nil
	}

	err = s.settingsRepo.SaveSettings(ctx, &settingsRepo.SaveSettingsInput{
		ProfileID: input.Identity.ProfileID,
		Settings:  remote,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &LoadRemoteSettingsOutput{Settings: remote, Replaced: true}, nil
}

// loadSettings returns the stored settings or the defaults when none are readable
func (s *service) loadSettings(ctx context.Context, profileID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{ProfileID: profileID})
	if err == nil {
		return settings, nil
	}

	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		return models.DefaultSettings(), nil
	case errors.Is(err, settingsRepo.ErrMalformedSettings):
		s.log.Warn("unreadable settings, using defaults", zap.String("profile_id", profileID))
		return models.DefaultSettings(), nil
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
}

// persistSettings saves locally and mirrors to the remote row for signed in profiles
func (s *service) persistSettings(ctx context.Context, identity models.Identity, settings *models.UserSettings) error {
	err := s.settingsRepo.SaveSettings(ctx, &settingsRepo.SaveSettingsInput{
		ProfileID: identity.ProfileID,
		Settings:  settings,
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if s.remoteEnabled(identity) {
		err := s.cloudRepo.UpsertSettings(ctx, &cloud.UpsertSettingsInput{
			UserID:   identity.ProfileID,
			Settings: settings,
		})
		if err != nil {
			s.log.Warn("remote settings sync failed",
				zap.String("profile_id", identity.ProfileID), zap.Error(err))
		}
	}

	return nil
}

// retargetToday moves today's stored target to a new goal. Past days keep theirs
func (s *service) retargetToday(ctx context.Context, profileID string, goal int) {
	today := clock.DateKey(s.clock.Now())

	stats, err := s.dailyStatsRepo.GetDailyStats(ctx, &dailyStatsRepo.GetDailyStatsInput{
		ProfileID: profileID,
		Date:      today,
	})
	if err != nil {
		if !errors.Is(err, dailyStatsRepo.ErrDailyStatsNotFound) {
			s.log.Warn("failed to load today for retarget", zap.String("profile_id", profileID), zap.Error(err))
		}
		return
	}

	stats.Target = goal
	if err := s.saveLocalDay(ctx, profileID, stats); err != nil {
		s.log.Warn("failed to retarget today", zap.String("profile_id", profileID), zap.Error(err))
	}
}

func validatePatch(patch *models.SettingsPatch) error {
	if patch == nil {
		return nil
	}

	if patch.DailyGoal != nil && *patch.DailyGoal <= 0 {
		return ErrInvalidGoal
	}

	if patch.ReminderIntervalMinutes != nil && *patch.ReminderIntervalMinutes <= 0 {
		return ErrInvalidInterval
	}

	if patch.WakeUpTime != nil && !validTime(*patch.WakeUpTime) {
		return ErrInvalidTime
	}

	if patch.BedTime != nil && !validTime(*patch.BedTime) {
		return ErrInvalidTime
	}

	if patch.ReminderType != nil && !patch.ReminderType.IsValid() {
		return ErrInvalidReminderType
	}

	for _, t := range patch.SpecificTimes {
		if !validTime(t) {
			return ErrInvalidTime
		}
	}

	return nil
}

// validTime accepts zero padded "HH:MM" only
func validTime(value string) bool {
	if len(value) != len(clock.MinuteLayout) {
		return false
	}
	_, err := clock.ParseHourMinute(value)
	return err == nil
}
