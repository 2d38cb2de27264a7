package achievement

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroflow/internal/services/achievement Service

import "context"

// Service evaluates streaks and achievement unlocks
type Service interface {
	// Evaluate recomputes the streak and unlocks any newly satisfied achievements
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// GetAchievements returns the catalog with the profile's unlock state and current streak
	GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error)

	// GetStreak returns the current streak
	GetStreak(ctx context.Context, input *GetStreakInput) (*GetStreakOutput, error)
}
