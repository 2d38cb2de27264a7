package daily_stats

import "github.com/KirkDiggler/hydroflow/internal/models"

type GetDailyStatsInput struct {
	ProfileID string
	Date      string
}

type SaveDailyStatsInput struct {
	ProfileID string
	Stats     *models.DailyStats
}

type GetDailyStatsRangeInput struct {
	ProfileID string
	Dates     []string
}

type GetDailyStatsRangeOutput struct {
	// Stats is keyed by date; absent dates had no usable entry
	Stats map[string]*models.DailyStats
}
