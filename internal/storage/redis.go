package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

const (
	locationsKey   = "world:locations"
	eventsKey      = "world:events"
	gameStateKey   = "gamestate:"
	gameStateTTL   = 0 // saves never expire
	maxPingRetries = 30
)

// RedisStorage implements the Storage interface using Redis for both
// world data and player saves.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	retryDelay := 2 * time.Second

	for i := 0; i < maxPingRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxPingRetries)
}

// Client exposes the underlying connection for pub/sub collaborators.
func (r *RedisStorage) Client() *redis.Client {
	return r.client
}

// World data operations

func (r *RedisStorage) GetLocations(ctx context.Context) ([]*world.Location, error) {
	data, err := r.getRaw(ctx, locationsKey)
	if err != nil || data == "" {
		return nil, err
	}

	var locations []*world.Location
	if err := json.Unmarshal([]byte(data), &locations); err != nil {
		r.logger.Error("Failed to unmarshal locations", "error", err)
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}
	return locations, nil
}

func (r *RedisStorage) SaveLocations(ctx context.Context, locations []*world.Location) error {
	return r.setJSON(ctx, locationsKey, locations)
}

func (r *RedisStorage) GetEvents(ctx context.Context) ([]world.Event, error) {
	data, err := r.getRaw(ctx, eventsKey)
	if err != nil || data == "" {
		return nil, err
	}

	var events []world.Event
	if err := json.Unmarshal([]byte(data), &events); err != nil {
		r.logger.Error("Failed to unmarshal events", "error", err)
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}
	return events, nil
}

func (r *RedisStorage) SaveEvents(ctx context.Context, events []world.Event) error {
	return r.setJSON(ctx, eventsKey, events)
}

// Game state operations

func (r *RedisStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.SavedState, error) {
	data, err := r.getRaw(ctx, gameStateKey+id.String())
	if err != nil {
		return nil, err
	}
	if data == "" {
		r.logger.Debug("Game state not found", "id", id)
		return nil, nil
	}

	var saved state.SavedState
	if err := json.Unmarshal([]byte(data), &saved); err != nil {
		r.logger.Error("Failed to unmarshal game state", "id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	return &saved, nil
}

func (r *RedisStorage) SaveGameState(ctx context.Context, id uuid.UUID, save *state.SavedState) error {
	data, err := json.Marshal(save)
	if err != nil {
		r.logger.Error("Failed to marshal game state", "id", id, "error", err)
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	key := gameStateKey + id.String()
	if err := r.client.Set(ctx, key, string(data), gameStateTTL).Err(); err != nil {
		r.logger.Error("Failed to save game state", "id", id, "error", err)
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

func (r *RedisStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, gameStateKey+id.String()).Err(); err != nil {
		r.logger.Error("Failed to delete game state", "id", id, "error", err)
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}

// getRaw reads a key, mapping redis.Nil to the empty string.
func (r *RedisStorage) getRaw(ctx context.Context, key string) (string, error) {
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return "", nil
		}
		r.logger.Error("Redis GET failed", "key", key, "error", err)
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return cmd.Val(), nil
}

func (r *RedisStorage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("Failed to marshal value", "key", key, "error", err)
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, string(data), 0).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
