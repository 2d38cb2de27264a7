package achievement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/achievement Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for per-profile achievement state
type Repository interface {
	// GetAchievements retrieves the catalog with the profile's unlock state
	GetAchievements(ctx context.Context, input *GetAchievementsInput) ([]*models.Achievement, error)

	// SaveAchievements overwrites the profile's catalog state
	SaveAchievements(ctx context.Context, input *SaveAchievementsInput) error
}
