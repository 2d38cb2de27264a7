package daily_stats

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
	// ErrDailyStatsNotFound is returned when no entry exists for the date
	ErrDailyStatsNotFound = errors.New("daily stats not found")

	// ErrMalformedDailyStats is returned when the stored entry cannot be decoded
	ErrMalformedDailyStats = errors.New("malformed daily stats")
)

// Config holds configuration for the Redis daily stats repository
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

// NewRedis creates a new Redis-backed daily stats repository
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

// GetDailyStats retrieves one day from Redis
func (r *redisRepository) GetDailyStats(ctx context.Context, input *GetDailyStatsInput) (*models.DailyStats, error) {
	if input == nil || input.ProfileID == "" || input.Date == "" {
		return nil, errors.New("input, profile ID and date cannot be empty")
	}

	statsJSON, err := r.client.Get(ctx, r.keys.Stats(input.ProfileID, input.Date)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDailyStatsNotFound
		}
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return decode(input.Date, statsJSON)
}

// SaveDailyStats overwrites one day in Redis
func (r *redisRepository) SaveDailyStats(ctx context.Context, input *SaveDailyStatsInput) error {
	if input == nil || input.Stats == nil {
		return errors.New("input and stats cannot be nil")
	}

	if input.ProfileID == "" || input.Stats.Date == "" {
		return errors.New("profile ID and date cannot be empty")
	}

	stats := input.Stats
	if stats.Records == nil {
		stats.Records = []*models.WaterRecord{}
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal daily stats: %w", err)
	}

	// No expiration, history is kept indefinitely
	if err := r.client.Set(ctx, r.keys.Stats(input.ProfileID, stats.Date), statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save daily stats: %w", err)
	}

	return nil
}

// GetDailyStatsRange retrieves several days with a single MGET
func (r *redisRepository) GetDailyStatsRange(ctx context.Context, input *GetDailyStatsRangeInput) (*GetDailyStatsRangeOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	out := &GetDailyStatsRangeOutput{
		Stats: make(map[string]*models.DailyStats, len(input.Dates)),
	}

	if len(input.Dates) == 0 {
		return out, nil
	}

	keys := make([]string, len(input.Dates))
	for i, date := range input.Dates {
		keys[i] = r.keys.Stats(input.ProfileID, date)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats range: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Missing key
			continue
		}

		stats, err := decode(input.Dates[i], raw)
		if err != nil {
			continue
		}
		out.Stats[input.Dates[i]] = stats
	}

	return out, nil
}

func decode(date, raw string) (*models.DailyStats, error) {
	var stats models.DailyStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDailyStats, date, err)
	}

	if stats.Date == "" {
		stats.Date = date
	}

	// Drop null entries so callers can range without nil checks
	records := stats.Records[:0]
	for _, rec := range stats.Records {
		if rec != nil {
			records = append(records, rec)
		}
	}
	stats.Records = records
	if stats.Records == nil {
		stats.Records = []*models.WaterRecord{}
	}

	return &stats, nil
}
