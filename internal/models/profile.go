package models

import "golang.org/x/crypto/bcrypt"

// ProfileKind distinguishes signed in accounts from local guests
type ProfileKind string

const (
	// ProfileKindUser is a signed in account; mutations are mirrored remotely
	ProfileKindUser ProfileKind = "user"

	// ProfileKindGuest lives purely in the local store
	ProfileKindGuest ProfileKind = "guest"
)

// Identity is who an operation runs on behalf of
type Identity struct {
	// ProfileID prefixes every local key and is the remote user id for accounts
	ProfileID string

	// Kind decides whether remote persistence is attempted
	Kind ProfileKind
}

// SignedIn reports whether the identity has a remote account
func (i *Identity) SignedIn() bool {
	return i != nil && i.Kind == ProfileKindUser
}

// User holds the display details of a profile
type User struct {
	// Name is the display name
	Name string `json:"name"`

	// Email is the sign in address, empty for guests
	Email string `json:"email"`

	// Avatar is an image URL
	Avatar string `json:"avatar"`

	// DiscordID links the profile to a Discord user for reminder DMs
	DiscordID string `json:"discordId,omitempty"`
}

// Account is a remote user row
type Account struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	Avatar       string `db:"avatar"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    string `db:"created_at"`
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies a password against the account's hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}
