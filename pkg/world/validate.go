package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// WorldFile is the authored world-data document: a location list plus an
// event catalog. Files may be JSON or YAML.
type WorldFile struct {
	Locations []*Location `json:"locations" yaml:"locations"`
	Events    []Event     `json:"events" yaml:"events"`
}

const worldSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["locations"],
  "properties": {
    "locations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "icon": {"type": "string"},
          "connections": {
            "type": "object",
            "additionalProperties": {"type": "integer", "minimum": 0}
          },
          "activities": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "name"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "name": {"type": "string", "minLength": 1},
                "event_chance": {"type": "number", "minimum": 0, "maximum": 1}
              }
            }
          },
          "activity_names": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          },
          "event_chance": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    },
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "message"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"enum": ["positive", "negative", "neutral", "urgent"]},
          "message": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var worldSchema = jsonschema.MustCompileString("world.schema.json", worldSchemaJSON)

// LoadFile reads a world-data file, validates it against the schema, and
// decodes it into the typed document. YAML files are normalized through
// JSON first so both formats see identical validation.
func LoadFile(path string) (*WorldFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML world file: %w", err)
		}
		raw, err = json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize YAML world file: %w", err)
		}
	}

	return Parse(raw)
}

// Parse validates and decodes a JSON world document.
func Parse(data []byte) (*WorldFile, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse world file: %w", err)
	}
	if err := worldSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("world file failed schema validation: %w", err)
	}

	var wf WorldFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to decode world file: %w", err)
	}
	if err := wf.Check(); err != nil {
		return nil, err
	}
	return &wf, nil
}

// Check runs the semantic checks the schema cannot express: unique IDs,
// connections resolving to known locations, chances within [0,1].
func (wf *WorldFile) Check() error {
	seen := make(map[string]bool, len(wf.Locations))
	for _, loc := range wf.Locations {
		if seen[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
	}
	for _, loc := range wf.Locations {
		for dest, cost := range loc.Connections {
			if !seen[dest] {
				return fmt.Errorf("location %q connects to unknown destination %q", loc.ID, dest)
			}
			if cost < 0 {
				return fmt.Errorf("location %q has negative fuel cost to %q", loc.ID, dest)
			}
		}
		if loc.EventChance < 0 || loc.EventChance > 1 {
			return fmt.Errorf("location %q event chance %v out of range", loc.ID, loc.EventChance)
		}
		actIDs := make(map[string]bool, len(loc.Activities))
		for _, a := range loc.Activities {
			if actIDs[a.ID] {
				return fmt.Errorf("location %q has duplicate activity id %q", loc.ID, a.ID)
			}
			actIDs[a.ID] = true
			if a.EventChance < 0 || a.EventChance > 1 {
				return fmt.Errorf("activity %q event chance %v out of range", a.ID, a.EventChance)
			}
		}
	}
	evIDs := make(map[string]bool, len(wf.Events))
	for _, ev := range wf.Events {
		if evIDs[ev.ID] {
			return fmt.Errorf("duplicate event id %q", ev.ID)
		}
		evIDs[ev.ID] = true
	}
	return nil
}

// World builds the runtime model from the document.
func (wf *WorldFile) World() *World {
	return New(wf.Locations, wf.Events)
}
