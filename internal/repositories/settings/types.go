package settings

import "github.com/KirkDiggler/hydroflow/internal/models"

type GetSettingsInput struct {
	ProfileID string
}

type SaveSettingsInput struct {
	ProfileID string
	Settings  *models.UserSettings
}
