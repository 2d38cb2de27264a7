package reminder

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

// Config holds the dependencies of the reminder service
type Config struct {
	SettingsRepo   settingsRepo.Repository
	DailyStatsRepo dailyStatsRepo.Repository
	Notifier       notification.Service
	Messages       messaging.Service
	Clock          clock.Clock
	Logger         *zap.Logger
}

type CheckRemindersInput struct {
	ProfileID string
}

// CheckRemindersOutput reports what the tick did
type CheckRemindersOutput struct {
	// Fired is true when a reminder was delivered on this tick
	Fired bool

	// Kind is the reminder that fired, empty when none did
	Kind messaging.ReminderKind

	// Delivery is the surface the reminder reached
	Delivery notification.Delivery
}
