package cloud

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/cloud Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for the remote record and settings tables
type Repository interface {
	// SaveRecord inserts one drink record
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// DeleteRecord removes one drink record by ID
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) error

	// GetDailyRecords returns a user's records for a date, newest first
	GetDailyRecords(ctx context.Context, input *GetDailyRecordsInput) (*GetDailyRecordsOutput, error)

	// UpsertSettings writes the user's settings row
	UpsertSettings(ctx context.Context, input *UpsertSettingsInput) error

	// GetSettings reads the user's settings row
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error)
}
