package profile

import "github.com/KirkDiggler/hydroflow/internal/models"

type SaveUserInput struct {
	ProfileID string
	User      *models.User
}

type GetUserInput struct {
	ProfileID string
}

type DeleteProfileInput struct {
	ProfileID string
}

type GetDarkModeInput struct {
	ProfileID string
}

type SetDarkModeInput struct {
	ProfileID string
	Enabled   bool
}

type IsGuestModeInput struct {
	ProfileID string
}

type RegisterProfileInput struct {
	ProfileID string
	Kind      models.ProfileKind
}

type ListProfilesInput struct {
}

type ListProfilesOutput struct {
	Profiles []*models.Identity
}

type GetProfileByDiscordIDInput struct {
	DiscordID string
}
