package tracker

import (
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

// DefaultHistoryDays is the history window when none is configured
const DefaultHistoryDays = 7

// Gender is an input of the goal calculator
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is an input of the goal calculator
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// Source tells where a day's records were read from
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Config holds configuration for the tracker service
type Config struct {
	// HistoryDays is the default trailing window for GetHistory
	HistoryDays int

	// Repository dependencies
	DailyStatsRepo dailyStatsRepo.Repository
	SettingsRepo   settingsRepo.Repository

	// CloudRepo is optional; without it signed in profiles behave like guests
	CloudRepo cloud.Repository

	// Service dependencies
	Achievements achievement.Service
	Notifier     notification.Service
	Messages     messaging.Service

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// AddRecordInput contains parameters for logging a drink
type AddRecordInput struct {
	Identity models.Identity
	Amount   int
	Type     models.DrinkType
	Note     string
}

// AddRecordOutput contains the result of logging a drink
type AddRecordOutput struct {
	Record *models.WaterRecord
	Stats  *models.DailyStats

	// GoalReached is true when the day's total is at or above target after the add
	GoalReached bool

	// Synced is false when a signed in profile's remote write failed
	Synced bool

	Streak        int
	NewlyUnlocked []*models.Achievement
}

type DeleteRecordInput struct {
	Identity models.Identity

	// Date defaults to today
	Date     string
	RecordID string
}

type DeleteRecordOutput struct {
	Stats  *models.DailyStats
	Streak int
}

type GetDailyStatsInput struct {
	Identity models.Identity

	// Date defaults to today
	Date string
}

// GetDailyStatsOutput is a day plus what the dashboard derives from it
type GetDailyStatsOutput struct {
	Stats       *models.DailyStats
	Total       int
	Percentage  int
	Remaining   int
	WaterPurity int
	Source      Source
}

type GetHistoryInput struct {
	Identity models.Identity

	// Days defaults to the configured history window
	Days int
}

type GetHistoryOutput struct {
	// Days is ordered oldest first
	Days []*models.DailyStats
}

type GetStatisticsInput struct {
	Identity models.Identity
}

// DayTotal is one bar of the weekly chart
type DayTotal struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Total       int    `json:"total"`
	Target      int    `json:"target"`
	GoalReached bool   `json:"goalReached"`
}

// GetStatisticsOutput aggregates the trailing week
type GetStatisticsOutput struct {
	Week []*DayTotal

	// Distribution is milliliters per drink type across the week
	Distribution map[models.DrinkType]int

	WeeklyTotal  int
	DailyAverage int

	// BestDay is nil when nothing was logged
	BestDay *DayTotal

	Streak            int
	UnlockedCount     int
	AchievementsCount int
}

type GetSettingsInput struct {
	Identity models.Identity
}

type GetSettingsOutput struct {
	Settings *models.UserSettings
}

type UpdateSettingsInput struct {
	Identity models.Identity
	Patch    *models.SettingsPatch
}

type UpdateSettingsOutput struct {
	Settings *models.UserSettings
}

type AddSpecificTimeInput struct {
	Identity models.Identity
	Time     string
}

type RemoveSpecificTimeInput struct {
	Identity models.Identity
	Time     string
}

type CalculateGoalInput struct {
	WeightKg float64
	Gender   Gender
	Activity ActivityLevel
}

type CalculateGoalOutput struct {
	DailyGoal int
}

type LoadRemoteSettingsInput struct {
	Identity models.Identity
}

type LoadRemoteSettingsOutput struct {
	Settings *models.UserSettings

	// Replaced is true when a remote row overwrote the local settings
	Replaced bool
}
