package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrSettingsNotFound is returned when the profile never saved settings
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrMalformedSettings is returned when the stored value is not a JSON object
	ErrMalformedSettings = errors.New("malformed settings")
)

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keyspace builds the storage keys
	Keyspace keyspace.Keyspace
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	keys   keyspace.Keyspace
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		keys:   cfg.Keyspace,
	}, nil
}

// GetSettings retrieves settings from Redis.
// Fields that are missing or fail to decode keep their default value
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.UserSettings, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, r.keys.Settings(input.ProfileID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return Decode([]byte(raw))
}

// SaveSettings overwrites settings in Redis
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	if input.ProfileID == "" {
		return errors.New("profile ID cannot be empty")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := r.client.Set(ctx, r.keys.Settings(input.ProfileID), settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Decode merges a stored settings object onto the defaults field by field
func Decode(raw []byte) (*models.UserSettings, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, ErrMalformedSettings
	}

	out := models.DefaultSettings()

	decodeField(fields, "dailyGoal", &out.DailyGoal)
	decodeField(fields, "reminderIntervalMinutes", &out.ReminderIntervalMinutes)
	decodeField(fields, "notificationsEnabled", &out.NotificationsEnabled)
	decodeField(fields, "wakeUpTime", &out.WakeUpTime)
	decodeField(fields, "bedTime", &out.BedTime)

	var reminderType models.ReminderType
	if decodeField(fields, "reminderType", &reminderType) && reminderType.IsValid() {
		out.ReminderType = reminderType
	}

	var times []string
	if decodeField(fields, "specificTimes", &times) && times != nil {
		out.SpecificTimes = times
	}

	return out, nil
}

// decodeField decodes one field into dst, leaving dst untouched on failure
func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) bool {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}
