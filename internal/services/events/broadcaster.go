package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oregontales/roadtrip/pkg/engine"
)

// EventType represents the type of update being broadcast
type EventType string

const (
	EventTypeStateUpdated EventType = "game.state_updated"
	EventTypeGameOver     EventType = "game.over"
	EventTypeRestarted    EventType = "game.restarted"
)

// Update is the wire shape pushed to SSE subscribers after an action.
type Update struct {
	Type   EventType            `json:"type"`
	GameID string               `json:"game_id"`
	Result *engine.ActionResult `json:"result,omitempty"`
}

// Broadcaster publishes game updates to Redis Pub/Sub for SSE distribution
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new game-update broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Channel returns the pub/sub channel name for a game session.
func Channel(gameID uuid.UUID) string {
	return fmt.Sprintf("game-events:%s", gameID.String())
}

// PublishActionResult broadcasts the outcome of one player action. Best
// effort: a publish failure is logged and never surfaces to the player.
func (b *Broadcaster) PublishActionResult(ctx context.Context, gameID uuid.UUID, result *engine.ActionResult) {
	eventType := EventTypeStateUpdated
	if result.GameOver != "" {
		eventType = EventTypeGameOver
	}
	b.publish(ctx, gameID, Update{
		Type:   eventType,
		GameID: gameID.String(),
		Result: result,
	})
}

// PublishRestart broadcasts a session restart.
func (b *Broadcaster) PublishRestart(ctx context.Context, gameID uuid.UUID, result *engine.ActionResult) {
	b.publish(ctx, gameID, Update{
		Type:   EventTypeRestarted,
		GameID: gameID.String(),
		Result: result,
	})
}

func (b *Broadcaster) publish(ctx context.Context, gameID uuid.UUID, update Update) {
	data, err := json.Marshal(update)
	if err != nil {
		b.logger.Error("Failed to marshal game update", "game_id", gameID, "error", err)
		return
	}

	if err := b.redisClient.Publish(ctx, Channel(gameID), string(data)).Err(); err != nil {
		b.logger.Warn("Failed to publish game update", "game_id", gameID, "error", err)
		return
	}

	b.logger.Debug("Published game update", "game_id", gameID, "type", update.Type)
}
