package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectError string
	}{
		{
			name: "valid document",
			data: `{
				"locations": [
					{"id": "Portland", "name": "Portland", "connections": {"Salem": 5}},
					{"id": "Salem", "name": "Salem", "connections": {"Portland": 5}}
				],
				"events": [
					{"id": "GOOD_WEATHER", "type": "positive", "message": "Sun!", "vibe_change": 10}
				]
			}`,
		},
		{
			name:        "not JSON",
			data:        `{locations: [}`,
			expectError: "failed to parse",
		},
		{
			name:        "missing locations",
			data:        `{"events": []}`,
			expectError: "schema validation",
		},
		{
			name:        "location missing name",
			data:        `{"locations": [{"id": "Portland"}]}`,
			expectError: "schema validation",
		},
		{
			name:        "bad event type",
			data:        `{"locations": [], "events": [{"id": "X", "type": "sideways", "message": "hm"}]}`,
			expectError: "schema validation",
		},
		{
			name: "duplicate location id",
			data: `{"locations": [
				{"id": "Portland", "name": "A"},
				{"id": "Portland", "name": "B"}
			]}`,
			expectError: `duplicate location id "Portland"`,
		},
		{
			name: "unknown connection destination",
			data: `{"locations": [
				{"id": "Portland", "name": "Portland", "connections": {"Atlantis": 3}}
			]}`,
			expectError: `unknown destination "Atlantis"`,
		},
		{
			name: "duplicate activity id",
			data: `{"locations": [
				{"id": "Portland", "name": "Portland", "activities": [
					{"id": "a", "name": "One"},
					{"id": "a", "name": "Two"}
				]}
			]}`,
			expectError: `duplicate activity id "a"`,
		},
		{
			name: "duplicate event id",
			data: `{"locations": [], "events": [
				{"id": "X", "type": "neutral", "message": "one"},
				{"id": "X", "type": "neutral", "message": "two"}
			]}`,
			expectError: `duplicate event id "X"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, err := Parse([]byte(tt.data))

			if tt.expectError == "" {
				if err != nil {
					t.Fatalf("Expected valid document, got error: %v", err)
				}
				if len(wf.Locations) == 0 {
					t.Error("Expected locations in parsed document")
				}
				return
			}

			if err == nil {
				t.Fatal("Expected validation error, got none")
			}
			if !strings.Contains(err.Error(), tt.expectError) {
				t.Errorf("Expected error containing %q, got %q", tt.expectError, err.Error())
			}
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	yamlDoc := `locations:
  - id: Portland
    name: Portland, Rose City
    connections:
      Salem: 5
    event_chance: 0.2
  - id: Salem
    name: Salem, The Capital
    activity_names:
      - Tour the State Capitol
events:
  - id: RAINY_DAY
    type: negative
    message: It's pouring rain.
    vibe_change: -5
`
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	wf, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected valid YAML world file, got error: %v", err)
	}

	w := wf.World()
	if w.StartLocation() != "Portland" {
		t.Errorf("Expected Portland start, got %q", w.StartLocation())
	}
	if cost := w.Location("Portland").Connections["Salem"]; cost != 5 {
		t.Errorf("Expected fuel cost 5 to Salem, got %d", cost)
	}
	if len(w.Events) != 1 || w.Events[0].VibeChange != -5 {
		t.Errorf("Expected rainy day event, got %+v", w.Events)
	}
	if acts := w.ActivitiesFor("Salem"); len(acts) != 1 {
		t.Errorf("Expected legacy activity adapted, got %+v", acts)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefaultDataPassesChecks(t *testing.T) {
	wf := &WorldFile{Locations: DefaultLocations(), Events: DefaultEvents()}
	if err := wf.Check(); err != nil {
		t.Errorf("Stock world data failed checks: %v", err)
	}
}
