package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         TrackerError = "config cannot be nil"
	ErrNilDailyStatsRepo TrackerError = "daily stats repository cannot be nil"
	ErrNilSettingsRepo   TrackerError = "settings repository cannot be nil"
	ErrNilAchievements   TrackerError = "achievement service cannot be nil"
	ErrNilNotifier       TrackerError = "notifier cannot be nil"
	ErrNilMessages       TrackerError = "messaging service cannot be nil"
	ErrNilClock          TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator  TrackerError = "UUID generator cannot be nil"

	ErrEmptyProfileID      TrackerError = "profile ID cannot be empty"
	ErrInvalidAmount       TrackerError = "amount must be greater than zero"
	ErrInvalidDrinkType    TrackerError = "unknown drink type"
	ErrInvalidDate         TrackerError = "date must be formatted YYYY-MM-DD"
	ErrRecordNotFound      TrackerError = "record not found"
	ErrInvalidGoal         TrackerError = "daily goal must be greater than zero"
	ErrInvalidInterval     TrackerError = "reminder interval must be greater than zero"
	ErrInvalidTime         TrackerError = "time must be formatted HH:MM"
	ErrInvalidReminderType TrackerError = "reminder type must be interval or specific"
	ErrInvalidWeight       TrackerError = "weight must be greater than zero"
	ErrInvalidGender       TrackerError = "gender must be male or female"
	ErrInvalidActivity     TrackerError = "activity must be low, medium or high"
)
