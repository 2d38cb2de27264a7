package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrUserNotFound is returned when a profile has no stored user details
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when a Discord user is not linked to any profile
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDiscordIDTaken is returned when the Discord user is already linked to another profile
	ErrDiscordIDTaken = errors.New("discord ID already linked to another profile")
)

// Config holds configuration for the Redis profile repository
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

// NewRedis creates a new Redis-backed profile repository
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

// SaveUser persists user details to Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	if input.ProfileID == "" {
		return errors.New("profile ID cannot be empty")
	}

	userJSON, err := json.Marshal(input.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	save := func(tx *redis.Tx) error {
		// The previous link is dropped so a changed Discord ID does not leave a stale pointer
		var previous models.User
		previousJSON, err := tx.Get(ctx, r.keys.User(input.ProfileID)).Result()
		switch {
		case err == redis.Nil:
		case err != nil:
			return fmt.Errorf("failed to get user: %w", err)
		default:
			// An unreadable record has no link worth keeping
			_ = json.Unmarshal([]byte(previousJSON), &previous)
		}

		if input.User.DiscordID != "" {
			owner, err := tx.Get(ctx, r.keys.Discord(input.User.DiscordID)).Result()
			if err != nil && err != redis.Nil {
				return fmt.Errorf("failed to get discord link: %w", err)
			}
			if err == nil && owner != input.ProfileID {
				return ErrDiscordIDTaken
			}
		}

		dropPrevious := false
		if previous.DiscordID != "" && previous.DiscordID != input.User.DiscordID {
			owner, err := tx.Get(ctx, r.keys.Discord(previous.DiscordID)).Result()
			if err != nil && err != redis.Nil {
				return fmt.Errorf("failed to get discord link: %w", err)
			}
			dropPrevious = owner == input.ProfileID
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.keys.User(input.ProfileID), userJSON, 0)

			if dropPrevious {
				pipe.Del(ctx, r.keys.Discord(previous.DiscordID))
			}

			if input.User.DiscordID != "" {
				pipe.Set(ctx, r.keys.Discord(input.User.DiscordID), input.ProfileID, 0)
			}
			return nil
		})
		return err
	}

	// Watching the link key turns a concurrent claim into a failed transaction
	keys := []string{r.keys.User(input.ProfileID)}
	if input.User.DiscordID != "" {
		keys = append(keys, r.keys.Discord(input.User.DiscordID))
	}

	if err := r.client.Watch(ctx, save, keys...); err != nil {
		if errors.Is(err, ErrDiscordIDTaken) {
			return err
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves user details from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.New("input and profile ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, r.keys.User(input.ProfileID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// DeleteProfile removes the session-scoped profile keys. Daily stats,
// settings and achievements are kept so a returning guest finds their history
func (r *redisRepository) DeleteProfile(ctx context.Context, input *DeleteProfileInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	// Unreadable user details are removed below regardless
	user, _ := r.GetUser(ctx, &GetUserInput{ProfileID: input.ProfileID})

	ownsLink := false
	if user != nil && user.DiscordID != "" {
		owner, err := r.client.Get(ctx, r.keys.Discord(user.DiscordID)).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get discord link: %w", err)
		}
		ownsLink = owner == input.ProfileID
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.keys.User(input.ProfileID), r.keys.GuestMode(input.ProfileID))
	pipe.HDel(ctx, r.keys.Profiles(), input.ProfileID)
	if ownsLink {
		pipe.Del(ctx, r.keys.Discord(user.DiscordID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

// GetDarkMode retrieves the theme preference from Redis
func (r *redisRepository) GetDarkMode(ctx context.Context, input *GetDarkModeInput) (bool, error) {
	if input == nil || input.ProfileID == "" {
		return false, errors.New("input and profile ID cannot be empty")
	}

	return r.getFlag(ctx, r.keys.DarkMode(input.ProfileID))
}

// SetDarkMode stores the theme preference in Redis
func (r *redisRepository) SetDarkMode(ctx context.Context, input *SetDarkModeInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	value := "false"
	if input.Enabled {
		value = "true"
	}

	if err := r.client.Set(ctx, r.keys.DarkMode(input.ProfileID), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}

	return nil
}

// IsGuestMode reads the guest flag from Redis
func (r *redisRepository) IsGuestMode(ctx context.Context, input *IsGuestModeInput) (bool, error) {
	if input == nil || input.ProfileID == "" {
		return false, errors.New("input and profile ID cannot be empty")
	}

	return r.getFlag(ctx, r.keys.GuestMode(input.ProfileID))
}

// RegisterProfile records the profile and its kind, and sets or clears the guest flag
func (r *redisRepository) RegisterProfile(ctx context.Context, input *RegisterProfileInput) error {
	if input == nil || input.ProfileID == "" {
		return errors.New("input and profile ID cannot be empty")
	}

	if input.Kind != models.ProfileKindUser && input.Kind != models.ProfileKindGuest {
		return fmt.Errorf("invalid profile kind %q", input.Kind)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.keys.Profiles(), input.ProfileID, string(input.Kind))
	if input.Kind == models.ProfileKindGuest {
		pipe.Set(ctx, r.keys.GuestMode(input.ProfileID), "true", 0)
	} else {
		pipe.Del(ctx, r.keys.GuestMode(input.ProfileID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to register profile: %w", err)
	}

	return nil
}

// ListProfiles returns every registered profile ordered by ID
func (r *redisRepository) ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error) {
	entries, err := r.client.HGetAll(ctx, r.keys.Profiles()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*models.Identity, 0, len(entries))
	for id, kind := range entries {
		profiles = append(profiles, &models.Identity{
			ProfileID: id,
			Kind:      models.ProfileKind(kind),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ProfileID < profiles[j].ProfileID
	})

	return &ListProfilesOutput{
		Profiles: profiles,
	}, nil
}

// GetProfileByDiscordID follows the Discord reverse link
func (r *redisRepository) GetProfileByDiscordID(ctx context.Context, input *GetProfileByDiscordIDInput) (*models.Identity, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and discord ID cannot be empty")
	}

	profileID, err := r.client.Get(ctx, r.keys.Discord(input.DiscordID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get discord link: %w", err)
	}

	kind, err := r.client.HGet(ctx, r.keys.Profiles(), profileID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile kind: %w", err)
	}

	return &models.Identity{
		ProfileID: profileID,
		Kind:      models.ProfileKind(kind),
	}, nil
}

func (r *redisRepository) getFlag(ctx context.Context, key string) (bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value == "true", nil
}
