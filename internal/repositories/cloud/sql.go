package cloud

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/hydroflow/internal/database"
	"github.com/KirkDiggler/hydroflow/internal/models"
)

// TimestampLayout is fixed width so text ordering matches chronological ordering
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrSettingsNotFound is returned when the user has no settings row
	ErrSettingsNotFound = errors.New("remote settings not found")

	// ErrRecordNotFound is returned when a delete matched no row
	ErrRecordNotFound = errors.New("remote record not found")
)

// Config holds configuration for the SQL cloud repository
type Config struct {
	DB *database.DB
}

// sqlRepository implements the Repository interface using sqlx
type sqlRepository struct {
	db *database.DB
}

// NewSQL creates a new SQL-backed cloud repository
func NewSQL(cfg *Config) (*sqlRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &sqlRepository{
		db: cfg.DB,
	}, nil
}

// SaveRecord inserts one drink record
func (r *sqlRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.UserID == "" || input.Date == "" {
		return errors.New("user ID and date cannot be empty")
	}

	row := &recordRow{
		ID:        input.Record.ID,
		UserID:    input.UserID,
		Amount:    input.Record.Amount,
		Type:      string(input.Record.Type),
		Timestamp: input.Record.Timestamp.UTC().Format(TimestampLayout),
		Note:      input.Record.Note,
		Date:      input.Date,
	}

	query := `
		INSERT INTO hydration_records (id, user_id, amount, type, timestamp, note, date)
		VALUES (:id, :user_id, :amount, :type, :timestamp, :note, :date)
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// DeleteRecord removes one drink record by ID
func (r *sqlRepository) DeleteRecord(ctx context.Context, input *DeleteRecordInput) error {
	if input == nil || input.UserID == "" || input.RecordID == "" {
		return errors.New("input, user ID and record ID cannot be empty")
	}

	query := r.db.Rebind(`DELETE FROM hydration_records WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query, input.RecordID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// GetDailyRecords returns a user's records for a date, newest first
func (r *sqlRepository) GetDailyRecords(ctx context.Context, input *GetDailyRecordsInput) (*GetDailyRecordsOutput, error) {
	if input == nil || input.UserID == "" || input.Date == "" {
		return nil, errors.New("input, user ID and date cannot be empty")
	}

	query := r.db.Rebind(`
		SELECT id, user_id, amount, type, timestamp, note, date
		FROM hydration_records
		WHERE user_id = ? AND date = ?
		ORDER BY timestamp DESC
	`)

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, input.UserID, input.Date); err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	records := make([]*models.WaterRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := time.Parse(time.RFC3339Nano, row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp of record %s: %w", row.ID, err)
		}

		records = append(records, &models.WaterRecord{
			ID:        row.ID,
			Amount:    row.Amount,
			Type:      models.DrinkType(row.Type),
			Timestamp: ts,
			Note:      row.Note,
		})
	}

	return &GetDailyRecordsOutput{
		Records: records,
	}, nil
}

// UpsertSettings writes the user's settings row
func (r *sqlRepository) UpsertSettings(ctx context.Context, input *UpsertSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	if input.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	times := input.Settings.SpecificTimes
	if times == nil {
		times = []string{}
	}

	timesJSON, err := json.Marshal(times)
	if err != nil {
		return fmt.Errorf("failed to marshal specific times: %w", err)
	}

	row := &settingsRow{
		UserID:               input.UserID,
		DailyGoal:            input.Settings.DailyGoal,
		ReminderInterval:     input.Settings.ReminderIntervalMinutes,
		NotificationsEnabled: input.Settings.NotificationsEnabled,
		WakeUpTime:           input.Settings.WakeUpTime,
		BedTime:              input.Settings.BedTime,
		ReminderType:         string(input.Settings.ReminderType),
		SpecificTimes:        string(timesJSON),
	}

	query := `
		INSERT INTO user_settings (user_id, daily_goal, reminder_interval, notifications_enabled,
			wake_up_time, bed_time, reminder_type, specific_times)
		VALUES (:user_id, :daily_goal, :reminder_interval, :notifications_enabled,
			:wake_up_time, :bed_time, :reminder_type, :specific_times)
		ON CONFLICT (user_id) DO UPDATE SET
			daily_goal = excluded.daily_goal,
			reminder_interval = excluded.reminder_interval,
			notifications_enabled = excluded.notifications_enabled,
			wake_up_time = excluded.wake_up_time,
			bed_time = excluded.bed_time,
			reminder_type = excluded.reminder_type,
			specific_times = excluded.specific_times
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

// GetSettings reads the user's settings row
func (r *sqlRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	query := r.db.Rebind(`
		SELECT user_id, daily_goal, reminder_interval, notifications_enabled,
			wake_up_time, bed_time, reminder_type, specific_times
		FROM user_settings
		WHERE user_id = ?
	`)

	var row settingsRow
	err := r.db.GetContext(ctx, &row, query, input.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings := &models.UserSettings{
		DailyGoal:               row.DailyGoal,
		ReminderIntervalMinutes: row.ReminderInterval,
		NotificationsEnabled:    row.NotificationsEnabled,
		WakeUpTime:              row.WakeUpTime,
		BedTime:                 row.BedTime,
		ReminderType:            models.ReminderType(row.ReminderType),
		SpecificTimes:           []string{},
	}

	// A corrupt times column keeps the defaults rather than failing the read
	if err := json.Unmarshal([]byte(row.SpecificTimes), &settings.SpecificTimes); err != nil || settings.SpecificTimes == nil {
		settings.SpecificTimes = models.DefaultSettings().SpecificTimes
	}

	if !settings.ReminderType.IsValid() {
		settings.ReminderType = models.ReminderTypeInterval
	}

	return settings, nil
}
