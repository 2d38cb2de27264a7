package auth

// AuthError is a custom error type for authentication errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          AuthError = "config cannot be nil"
	ErrEmptySecret        AuthError = "session secret cannot be empty"
	ErrNilProfileRepo     AuthError = "profile repository cannot be nil"
	ErrNilTracker         AuthError = "tracker service cannot be nil"
	ErrAccountsDisabled   AuthError = "accounts are unavailable, use guest mode"
	ErrInvalidCredentials AuthError = "invalid email or password"
	ErrInvalidEmail       AuthError = "a valid email is required"
	ErrWeakPassword       AuthError = "password must be at least 6 characters"
	ErrUnauthenticated    AuthError = "authentication required"
)
