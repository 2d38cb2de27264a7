package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/settings Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for the local settings store
type Repository interface {
	// GetSettings retrieves a profile's settings merged onto the defaults
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error)

	// SaveSettings overwrites a profile's settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error
}
