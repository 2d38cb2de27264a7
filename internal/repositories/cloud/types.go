package cloud

import "github.com/KirkDiggler/hydroflow/internal/models"

type SaveRecordInput struct {
	UserID string
	// Date is the calendar day the record belongs to
	Date   string
	Record *models.WaterRecord
}

type DeleteRecordInput struct {
	UserID   string
	RecordID string
}

type GetDailyRecordsInput struct {
	UserID string
	Date   string
}

type GetDailyRecordsOutput struct {
	Records []*models.WaterRecord
}

type UpsertSettingsInput struct {
	UserID   string
	Settings *models.UserSettings
}

type GetSettingsInput struct {
	UserID string
}

// recordRow maps the hydration_records table
type recordRow struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Amount    int    `db:"amount"`
	Type      string `db:"type"`
	Timestamp string `db:"timestamp"`
	Note      string `db:"note"`
	Date      string `db:"date"`
}

// settingsRow maps the user_settings table
type settingsRow struct {
	UserID               string `db:"user_id"`
	DailyGoal            int    `db:"daily_goal"`
	ReminderInterval     int    `db:"reminder_interval"`
	NotificationsEnabled bool   `db:"notifications_enabled"`
	WakeUpTime           string `db:"wake_up_time"`
	BedTime              string `db:"bed_time"`
	ReminderType         string `db:"reminder_type"`
	SpecificTimes        string `db:"specific_times"`
}
