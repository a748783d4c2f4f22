package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oregontales/roadtrip/internal/services/events"
)

func setupEventsHandler(t *testing.T) (*EventsHandler, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewEventsHandler(client, testLogger()), mr
}

func TestEventsHandler_Validation(t *testing.T) {
	handler, _ := setupEventsHandler(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "method not allowed",
			method:         http.MethodPost,
			path:           "/v1/events/game/" + uuid.New().String(),
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "bad path",
			method:         http.MethodGet,
			path:           "/v1/events/game",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad game ID",
			method:         http.MethodGet,
			path:           "/v1/events/game/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestEventsHandler_Stream(t *testing.T) {
	handler, mr := setupEventsHandler(t)

	gameID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/v1/events/game/"+gameID.String(), nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.ServeHTTP(rr, req)
		close(done)
	}()

	// Publish once the handler's subscription is live. miniredis reports
	// the number of receivers, so zero means keep waiting.
	update, err := json.Marshal(events.Update{
		Type:   events.EventTypeStateUpdated,
		GameID: gameID.String(),
	})
	require.NoError(t, err)

	deadline := time.After(2 * time.Second)
	for mr.Publish(events.Channel(gameID), string(update)) == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("Handler never subscribed to the game channel")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Give the handler a moment to forward the message, then disconnect.
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	body := rr.Body.String()
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(body, "event: connected"), "expected connected event, got: %s", body)
	assert.True(t, strings.Contains(body, "event: game.state_updated"), "expected forwarded update, got: %s", body)
	assert.True(t, strings.Contains(body, gameID.String()), "expected game ID in stream")
}
