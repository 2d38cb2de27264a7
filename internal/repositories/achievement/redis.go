package achievement

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
	// ErrAchievementsNotFound is returned when the profile has no stored state
	ErrAchievementsNotFound = errors.New("achievements not found")

	// ErrMalformedAchievements is returned when the stored state cannot be decoded
	ErrMalformedAchievements = errors.New("malformed achievements")
)

// Config holds configuration for the Redis achievement repository
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

// NewRedis creates a new Redis-backed achievement repository
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

// GetAchievements retrieves the stored unlock state overlaid on the catalog.
// Catalog text always comes from the current catalog, only unlock state is read back
func (r *redisRepository) GetAchievements(ctx context.Context, input *GetAchievementsInput) ([]*models.Achievement, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, r.keys.Achievements(input.ProfileID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAchievementsNotFound
		}
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}

	var stored []*models.Achievement
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAchievements, err)
	}

	byID := make(map[models.AchievementID]*models.Achievement, len(stored))
	for _, a := range stored {
		if a != nil {
			byID[a.ID] = a
		}
	}

	catalog := models.DefaultAchievements()
	for _, a := range catalog {
		if s, ok := byID[a.ID]; ok && s.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = s.UnlockedAt
		}
	}

	return catalog, nil
}

// SaveAchievements overwrites the stored catalog state
func (r *redisRepository) SaveAchievements(ctx context.Context, input *SaveAchievementsInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	raw, err := json.Marshal(input.Achievements)
	if err != nil {
		return fmt.Errorf("failed to marshal achievements: %w", err)
	}

	if err := r.client.Set(ctx, r.keys.Achievements(input.ProfileID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}

	return nil
}
