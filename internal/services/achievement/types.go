package achievement

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/models"
	achievementRepo "github.com/KirkDiggler/hydroflow/internal/repositories/achievement"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

const (
	// StreakWindowDays bounds the backward scan
	StreakWindowDays = 30

	// EarlyBirdHour is the local hour before which a drink counts as early
	EarlyBirdHour = 8
)

// Config holds the dependencies of the achievement service
type Config struct {
	DailyStatsRepo  dailyStatsRepo.Repository
	AchievementRepo achievementRepo.Repository
	Notifier        notification.Service
	Messages        messaging.Service
	Clock           clock.Clock
	Logger          *zap.Logger
}

// EvaluateInput contains parameters for an evaluation
type EvaluateInput struct {
	ProfileID string

	// Stats is the day the rules are checked against. Nil loads today
	Stats *models.DailyStats
}

// EvaluateOutput contains the result of an evaluation
type EvaluateOutput struct {
	Streak        int
	Achievements  []*models.Achievement
	NewlyUnlocked []*models.Achievement
}

type GetAchievementsInput struct {
	ProfileID string
}

type GetAchievementsOutput struct {
	Achievements  []*models.Achievement
	UnlockedCount int
	Streak        int
}

type GetStreakInput struct {
	ProfileID string
}

type GetStreakOutput struct {
	Streak int
}
