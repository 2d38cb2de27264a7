package reminder

// ReminderError is a custom error type for reminder errors
type ReminderError string

// Error implements the error interface
func (e ReminderError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         ReminderError = "config cannot be nil"
	ErrNilSettingsRepo   ReminderError = "settings repository cannot be nil"
	ErrNilDailyStatsRepo ReminderError = "daily stats repository cannot be nil"
	ErrNilNotifier       ReminderError = "notifier cannot be nil"
	ErrNilMessages       ReminderError = "messaging service cannot be nil"
	ErrNilClock          ReminderError = "clock cannot be nil"
	ErrEmptyProfileID    ReminderError = "profile ID cannot be empty"
)
