package achievement

// AchievementError is a custom error type for achievement errors
type AchievementError string

// Error implements the error interface
func (e AchievementError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          AchievementError = "config cannot be nil"
	ErrNilDailyStatsRepo  AchievementError = "daily stats repository cannot be nil"
	ErrNilAchievementRepo AchievementError = "achievement repository cannot be nil"
	ErrNilNotifier        AchievementError = "notifier cannot be nil"
	ErrNilMessages        AchievementError = "messaging service cannot be nil"
	ErrNilClock           AchievementError = "clock cannot be nil"
	ErrEmptyProfileID     AchievementError = "profile ID cannot be empty"
)
