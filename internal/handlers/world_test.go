package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oregontales/roadtrip/internal/auth"
	"github.com/oregontales/roadtrip/internal/storage"
	"github.com/oregontales/roadtrip/pkg/engine"
	"github.com/oregontales/roadtrip/pkg/world"
)

func newTestAdminHandler() (*AdminHandler, *engine.Manager, *storage.MockStorage, *auth.LocalAuthorizer) {
	logger := testLogger()
	mock := storage.NewMockStorage()
	sessions := engine.NewManager(world.DefaultWorld(), mock, logger, func() engine.Rand { return quietRand{} })
	authz := auth.NewLocalAuthorizer()
	return NewAdminHandler(mock, sessions, authz, logger), sessions, mock, authz
}

func TestAdminHandler_ListLocations(t *testing.T) {
	handler, _, _, _ := newTestAdminHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/locations", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var locations []*world.Location
	if err := json.NewDecoder(rr.Body).Decode(&locations); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(locations) != 10 {
		t.Errorf("Expected 10 stock locations, got %d", len(locations))
	}
}

func TestAdminHandler_WritesRequireAuth(t *testing.T) {
	handler, _, mock, authz := newTestAdminHandler()
	authz.SignOut()

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/locations", strings.NewReader(`[]`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", rr.Code)
	}
	if locs, _ := mock.GetLocations(req.Context()); locs != nil {
		t.Error("Unauthorized write must not touch storage")
	}

	// Reads stay open.
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/locations", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected reads to stay open, got %d", rr.Code)
	}
}

func TestAdminHandler_UpsertLocation(t *testing.T) {
	handler, sessions, _, _ := newTestAdminHandler()

	body := `{
		"name": "Astoria, Goonies Country",
		"description": "Where the Columbia meets the Pacific.",
		"connections": {"Cannon Beach": 3},
		"activities": [{"id": "goonies", "name": "Hike to the filming spots"}],
		"event_chance": 0.2
	}`
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/locations/Astoria", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var loc world.Location
	if err := json.NewDecoder(rr.Body).Decode(&loc); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if loc.ID != "Astoria" {
		t.Errorf("Expected ID from path, got %q", loc.ID)
	}
	// Missing activity icons get derived from keywords.
	if loc.Activities[0].Icon != "🌲" {
		t.Errorf("Expected derived hike icon, got %q", loc.Activities[0].Icon)
	}

	// The live world model picked up the edit.
	if sessions.World().Location("Astoria") == nil {
		t.Error("Expected world reload to include the new location")
	}
}

func TestAdminHandler_DeleteEvent(t *testing.T) {
	handler, sessions, mock, _ := newTestAdminHandler()

	// Seed first so the delete has stored data to edit.
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/seed", strings.NewReader(""))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Seed failed: %d %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/events/POTHOLE", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	events, err := mock.GetEvents(req.Context())
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	for _, ev := range events {
		if ev.ID == "POTHOLE" {
			t.Error("Expected POTHOLE removed from storage")
		}
	}
	for _, ev := range sessions.World().Events {
		if ev.ID == "POTHOLE" {
			t.Error("Expected POTHOLE removed from the live world")
		}
	}
}

func TestAdminHandler_Seed(t *testing.T) {
	handler, _, mock, _ := newTestAdminHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/seed", strings.NewReader(""))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp["seeded"] {
		t.Error("Expected empty storage to be seeded")
	}
	if locs, _ := mock.GetLocations(req.Context()); len(locs) != 10 {
		t.Errorf("Expected 10 locations in storage, got %d", len(locs))
	}

	// Second seed is a no-op.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/admin/seed", strings.NewReader("")))
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["seeded"] {
		t.Error("Expected existing data to be left alone")
	}
}

func TestAdminHandler_FiltersAuthoredText(t *testing.T) {
	handler, _, _, _ := newTestAdminHandler()

	body := `{"type": "negative", "message": "What the hell, a flat tire!", "vibe_change": -5}`
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/events/FLAT_TIRE", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var ev world.Event
	if err := json.NewDecoder(rr.Body).Decode(&ev); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if strings.Contains(strings.ToLower(ev.Message), "hell") {
		t.Errorf("Expected filtered message, got %q", ev.Message)
	}
	if ev.Icon != "⚠️" {
		t.Errorf("Expected negative event icon, got %q", ev.Icon)
	}
}
