package keyspace

import "fmt"

// DefaultNamespace is the key namespace used when none is configured
const DefaultNamespace = "hydroflow"

// Keyspace builds the storage keys shared by the local repositories.
// Per profile keys are prefixed with "<profile>:" so several users can share one Redis.
type Keyspace struct {
	Namespace string
}

// New creates a keyspace, falling back to the default namespace
func New(namespace string) Keyspace {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return Keyspace{Namespace: namespace}
}

func (k Keyspace) ns() string {
	if k.Namespace == "" {
		return DefaultNamespace
	}
	return k.Namespace
}

// Stats is the daily stats key for one profile and date
func (k Keyspace) Stats(profileID, date string) string {
	return fmt.Sprintf("%s:%s_stats_%s", profileID, k.ns(), date)
}

// Settings is the settings key for a profile
func (k Keyspace) Settings(profileID string) string {
	return fmt.Sprintf("%s:%s_settings", profileID, k.ns())
}

// Achievements is the achievement catalog key for a profile
func (k Keyspace) Achievements(profileID string) string {
	return fmt.Sprintf("%s:%s_achievements", profileID, k.ns())
}

// User is the user details key for a profile
func (k Keyspace) User(profileID string) string {
	return fmt.Sprintf("%s:%s_user", profileID, k.ns())
}

// DarkMode is the theme preference key for a profile
func (k Keyspace) DarkMode(profileID string) string {
	return fmt.Sprintf("%s:%s_darkmode", profileID, k.ns())
}

// GuestMode is the guest flag key for a profile
func (k Keyspace) GuestMode(profileID string) string {
	return fmt.Sprintf("%s:%s_guest_mode", profileID, k.ns())
}

// Profiles is the registry hash of every known profile
func (k Keyspace) Profiles() string {
	return fmt.Sprintf("%s_profiles", k.ns())
}

// Discord is the reverse link from a Discord user to a profile
func (k Keyspace) Discord(discordUserID string) string {
	return fmt.Sprintf("%s_discord_%s", k.ns(), discordUserID)
}
