package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroflow/internal/services/tracker Service

import "context"

// Service owns drink records, daily stats and settings for a profile
type Service interface {
	// AddRecord logs a drink on today's stats
	AddRecord(ctx context.Context, input *AddRecordInput) (*AddRecordOutput, error)

	// DeleteRecord removes one record from a day
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error)

	// GetDailyStats returns one day with its derived progress
	GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*GetDailyStatsOutput, error)

	// GetHistory returns the trailing days ending today, oldest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetStatistics aggregates the trailing week
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// GetSettings returns the profile's settings
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSettings merges a partial update into the settings
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// AddSpecificTime adds a reminder time of day
	AddSpecificTime(ctx context.Context, input *AddSpecificTimeInput) (*UpdateSettingsOutput, error)

	// RemoveSpecificTime removes a reminder time of day
	RemoveSpecificTime(ctx context.Context, input *RemoveSpecificTimeInput) (*UpdateSettingsOutput, error)

	// CalculateGoal suggests a daily goal from body weight and lifestyle
	CalculateGoal(ctx context.Context, input *CalculateGoalInput) (*CalculateGoalOutput, error)

	// LoadRemoteSettings replaces local settings with the remote copy when one exists
	LoadRemoteSettings(ctx context.Context, input *LoadRemoteSettingsInput) (*LoadRemoteSettingsOutput, error)
}
