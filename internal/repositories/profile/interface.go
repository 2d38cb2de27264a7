package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for profile data persistence
type Repository interface {
	// SaveUser persists user details and maintains the Discord reverse link.
	// A Discord ID linked to another profile returns ErrDiscordIDTaken
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves user details for a profile
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// DeleteProfile removes user details, flags, the Discord link and the registry entry
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) error

	// GetDarkMode retrieves the theme preference, false when unset
	GetDarkMode(ctx context.Context, input *GetDarkModeInput) (bool, error)

	// SetDarkMode stores the theme preference
	SetDarkMode(ctx context.Context, input *SetDarkModeInput) error

	// IsGuestMode reports whether the profile is a local-only guest
	IsGuestMode(ctx context.Context, input *IsGuestModeInput) (bool, error)

	// RegisterProfile adds a profile to the registry the reminder scheduler walks
	RegisterProfile(ctx context.Context, input *RegisterProfileInput) error

	// ListProfiles returns every registered profile
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)

	// GetProfileByDiscordID resolves a Discord user to a profile
	GetProfileByDiscordID(ctx context.Context, input *GetProfileByDiscordIDInput) (*models.Identity, error)
}
