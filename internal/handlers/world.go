package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/oregontales/roadtrip/internal/auth"
	"github.com/oregontales/roadtrip/internal/storage"
	"github.com/oregontales/roadtrip/pkg/engine"
	"github.com/oregontales/roadtrip/pkg/textfilter"
	"github.com/oregontales/roadtrip/pkg/world"
)

// AdminHandler is the editor surface: CRUD over locations and events,
// plus seeding. Writes are gated by the Authorizer, pass authored text
// through the family filter, and get cosmetic icon enrichment. Every
// successful write reloads the world model for future sessions.
//
// Routes:
//
//	GET    /v1/admin/locations        - List locations
//	PUT    /v1/admin/locations        - Replace all locations
//	PUT    /v1/admin/locations/{id}   - Upsert one location
//	DELETE /v1/admin/locations/{id}   - Delete one location
//	GET    /v1/admin/events           - List events
//	PUT    /v1/admin/events           - Replace the event catalog
//	PUT    /v1/admin/events/{id}      - Upsert one event
//	DELETE /v1/admin/events/{id}      - Delete one event
//	POST   /v1/admin/seed             - Seed defaults into empty storage
type AdminHandler struct {
	store    storage.Storage
	sessions *engine.Manager
	authz    auth.Authorizer
	filter   *textfilter.Filter
	logger   *slog.Logger
}

func NewAdminHandler(store storage.Storage, sessions *engine.Manager, authz auth.Authorizer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:    store,
		sessions: sessions,
		authz:    authz,
		filter:   textfilter.New(),
		logger:   logger,
	}
}

func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet && !h.authz.IsAuthorized() {
		h.writeError(w, http.StatusForbidden, "Not authorized for admin operations")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/admin"), "/")
	parts := strings.SplitN(rest, "/", 2)
	resource := parts[0]
	id := ""
	if len(parts) == 2 {
		id = parts[1]
	}

	switch resource {
	case "locations":
		h.handleLocations(w, r, id)
	case "events":
		h.handleEvents(w, r, id)
	case "seed":
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleSeed(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "Unknown admin resource")
	}
}

func (h *AdminHandler) handleLocations(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	switch {
	case r.Method == http.MethodGet && id == "":
		h.writeJSON(w, http.StatusOK, h.sessions.World().LocationList())

	case r.Method == http.MethodPut && id == "":
		var locations []*world.Location
		if err := json.NewDecoder(r.Body).Decode(&locations); err != nil {
			h.writeError(w, http.StatusBadRequest, "Request body must be a location array")
			return
		}
		for _, loc := range locations {
			h.cleanLocation(loc)
		}
		if err := h.store.SaveLocations(ctx, locations); err != nil {
			h.logger.Error("Failed to save locations", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to save locations")
			return
		}
		h.reloadWorld(r)
		h.writeJSON(w, http.StatusOK, locations)

	case r.Method == http.MethodPut:
		var loc world.Location
		if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
			h.writeError(w, http.StatusBadRequest, "Request body must be a location")
			return
		}
		loc.ID = id
		h.cleanLocation(&loc)

		locations, err := h.store.GetLocations(ctx)
		if err != nil {
			h.logger.Error("Failed to load locations", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to load locations")
			return
		}
		if len(locations) == 0 {
			locations = world.DefaultLocations()
		}
		replaced := false
		for i, existing := range locations {
			if existing.ID == id {
				locations[i] = &loc
				replaced = true
				break
			}
		}
		if !replaced {
			locations = append(locations, &loc)
		}
		if err := h.store.SaveLocations(ctx, locations); err != nil {
			h.logger.Error("Failed to save location", "id", id, "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to save location")
			return
		}
		h.reloadWorld(r)
		h.writeJSON(w, http.StatusOK, &loc)

	case r.Method == http.MethodDelete && id != "":
		locations, err := h.store.GetLocations(ctx)
		if err != nil {
			h.logger.Error("Failed to load locations", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to load locations")
			return
		}
		kept := locations[:0]
		for _, loc := range locations {
			if loc.ID != id {
				kept = append(kept, loc)
			}
		}
		if err := h.store.SaveLocations(ctx, kept); err != nil {
			h.logger.Error("Failed to delete location", "id", id, "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to delete location")
			return
		}
		h.reloadWorld(r)
		w.WriteHeader(http.StatusNoContent)

	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *AdminHandler) handleEvents(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	switch {
	case r.Method == http.MethodGet && id == "":
		h.writeJSON(w, http.StatusOK, h.sessions.World().Events)

	case r.Method == http.MethodPut && id == "":
		var evs []world.Event
		if err := json.NewDecoder(r.Body).Decode(&evs); err != nil {
			h.writeError(w, http.StatusBadRequest, "Request body must be an event array")
			return
		}
		for i := range evs {
			h.cleanEvent(&evs[i])
		}
		if err := h.store.SaveEvents(ctx, evs); err != nil {
			h.logger.Error("Failed to save events", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to save events")
			return
		}
		h.reloadWorld(r)
		h.writeJSON(w, http.StatusOK, evs)

	case r.Method == http.MethodPut:
		var ev world.Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			h.writeError(w, http.StatusBadRequest, "Request body must be an event")
			return
		}
		ev.ID = id
		h.cleanEvent(&ev)

		evs, err := h.store.GetEvents(ctx)
		if err != nil {
			h.logger.Error("Failed to load events", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to load events")
			return
		}
		if len(evs) == 0 {
			evs = world.DefaultEvents()
		}
		replaced := false
		for i := range evs {
			if evs[i].ID == id {
				evs[i] = ev
				replaced = true
				break
			}
		}
		if !replaced {
			evs = append(evs, ev)
		}
		if err := h.store.SaveEvents(ctx, evs); err != nil {
			h.logger.Error("Failed to save event", "id", id, "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to save event")
			return
		}
		h.reloadWorld(r)
		h.writeJSON(w, http.StatusOK, &ev)

	case r.Method == http.MethodDelete && id != "":
		evs, err := h.store.GetEvents(ctx)
		if err != nil {
			h.logger.Error("Failed to load events", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to load events")
			return
		}
		kept := evs[:0]
		for _, ev := range evs {
			if ev.ID != id {
				kept = append(kept, ev)
			}
		}
		if err := h.store.SaveEvents(ctx, kept); err != nil {
			h.logger.Error("Failed to delete event", "id", id, "error", err)
			h.writeError(w, http.StatusInternalServerError, "Failed to delete event")
			return
		}
		h.reloadWorld(r)
		w.WriteHeader(http.StatusNoContent)

	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *AdminHandler) handleSeed(w http.ResponseWriter, r *http.Request) {
	seeded, err := storage.SeedDefaults(r.Context(), h.store, h.logger)
	if err != nil {
		h.logger.Error("Failed to seed defaults", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to seed defaults")
		return
	}
	if seeded {
		h.reloadWorld(r)
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"seeded": seeded})
}

// cleanLocation filters authored text and fills in missing icons.
func (h *AdminHandler) cleanLocation(loc *world.Location) {
	loc.Name = h.filter.Clean(loc.Name)
	loc.Description = h.filter.Clean(loc.Description)
	for i := range loc.Activities {
		loc.Activities[i].Name = h.filter.Clean(loc.Activities[i].Name)
		loc.Activities[i].Description = h.filter.Clean(loc.Activities[i].Description)
	}
	world.EnrichLocationIcons(loc)
}

func (h *AdminHandler) cleanEvent(ev *world.Event) {
	ev.Message = h.filter.Clean(ev.Message)
	world.EnrichEventIcon(ev)
}

// reloadWorld rebuilds the world model from storage so sessions created
// from now on see the edit.
func (h *AdminHandler) reloadWorld(r *http.Request) {
	h.sessions.SetWorld(storage.LoadWorld(r.Context(), h.store, h.logger))
}

func (h *AdminHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *AdminHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
