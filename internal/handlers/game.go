package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/internal/services/events"
	"github.com/oregontales/roadtrip/pkg/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// TravelRequest is the body for POST /v1/game/{id}/travel.
type TravelRequest struct {
	Destination string `json:"destination"`
}

// ActivityRequest is the body for POST /v1/game/{id}/activity.
type ActivityRequest struct {
	ActivityID string `json:"activity_id"`
}

// GameHandler exposes the player action surface.
//
// Routes:
//
//	POST /v1/game                  - Create a new session
//	GET  /v1/game/{id}             - Session snapshot
//	POST /v1/game/{id}/travel      - Travel to a connected location
//	POST /v1/game/{id}/rest        - Rest for a day
//	POST /v1/game/{id}/activity    - Perform an activity
//	POST /v1/game/{id}/restart     - Reset to baseline
//	POST /v1/game/{id}/save        - Persist on demand
//	POST /v1/game/{id}/ack         - Acknowledge the pending event
type GameHandler struct {
	sessions    *engine.Manager
	broadcaster *events.Broadcaster
	logger      *slog.Logger
}

// NewGameHandler creates the action-surface handler. The broadcaster is
// optional; pass nil to skip SSE publication.
func NewGameHandler(sessions *engine.Manager, broadcaster *events.Broadcaster, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		sessions:    sessions,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/game"), "/")

	if rest == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.Split(rest, "/")
	id, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid game ID", "id", parts[0], "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	session, ok := h.sessions.Get(r.Context(), id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "Game not found")
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.writeJSON(w, http.StatusOK, session.Snapshot())
		return
	}

	if len(parts) != 2 || r.Method != http.MethodPost {
		h.writeError(w, http.StatusNotFound, "Unknown game action")
		return
	}

	h.handleAction(w, r, session, parts[1])
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Create(r.Context())
	h.logger.Info("Game session created", "id", session.ID())
	h.writeJSON(w, http.StatusCreated, session.Snapshot())
}

func (h *GameHandler) handleAction(w http.ResponseWriter, r *http.Request, session *engine.Lifecycle, action string) {
	ctx := r.Context()

	var (
		result *engine.ActionResult
		err    error
	)

	switch action {
	case "travel":
		var req TravelRequest
		if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil || req.Destination == "" {
			h.writeError(w, http.StatusBadRequest, "Request body must include a destination")
			return
		}
		result, err = session.Travel(ctx, req.Destination)

	case "rest":
		result, err = session.Rest(ctx)

	case "activity":
		var req ActivityRequest
		if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil || req.ActivityID == "" {
			h.writeError(w, http.StatusBadRequest, "Request body must include an activity_id")
			return
		}
		result, err = session.PerformActivity(ctx, req.ActivityID)

	case "restart":
		result, err = session.Restart(ctx)

	case "save":
		result, err = session.SaveNow(ctx)

	case "ack":
		session.AcknowledgeEvent()
		w.WriteHeader(http.StatusNoContent)
		return

	default:
		h.writeError(w, http.StatusNotFound, "Unknown game action")
		return
	}

	if err != nil {
		var vErr *engine.ValidationError
		if errors.As(err, &vErr) {
			h.writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.logger.Error("Game action failed", "id", session.ID(), "action", action, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Game action failed")
		return
	}

	if h.broadcaster != nil {
		if action == "restart" {
			h.broadcaster.PublishRestart(ctx, session.ID(), result)
		} else {
			h.broadcaster.PublishActionResult(ctx, session.ID(), result)
		}
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *GameHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *GameHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
