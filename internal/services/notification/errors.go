package notification

// NotificationError is a custom error type for notification errors
type NotificationError string

// Error implements the error interface
func (e NotificationError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          NotificationError = "config cannot be nil"
	ErrNilPublisher       NotificationError = "publisher cannot be nil"
	ErrEmptyProfileID     NotificationError = "profile ID cannot be empty"
	ErrInvalidSoundCue    NotificationError = "unknown sound cue"
	ErrChannelUnavailable NotificationError = "system notification channel unavailable"
)
