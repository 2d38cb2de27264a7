package daily_stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for the local per-day record store
type Repository interface {
	// GetDailyStats retrieves one day for a profile
	GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*models.DailyStats, error)

	// SaveDailyStats overwrites one day for a profile
	SaveDailyStats(ctx context.Context, input *SaveDailyStatsInput) error

	// GetDailyStatsRange retrieves several days in one round trip, skipping missing or malformed days
	GetDailyStatsRange(ctx context.Context, input *GetDailyStatsRangeInput) (*GetDailyStatsRangeOutput, error)
}
