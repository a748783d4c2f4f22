package world

import (
	"fmt"
	"sort"
)

// EventType classifies a catalog event for presentation purposes.
type EventType string

const (
	EventPositive EventType = "positive"
	EventNegative EventType = "negative"
	EventNeutral  EventType = "neutral"
	EventUrgent   EventType = "urgent"
)

// RequiredResources are minimum thresholds checked before an activity's
// costs are deducted. Snacks are deliberately not enforced as a minimum.
type RequiredResources struct {
	Fuel      int `json:"fuel,omitempty" yaml:"fuel,omitempty"`
	Money     int `json:"money,omitempty" yaml:"money,omitempty"`
	Vibes     int `json:"vibes,omitempty" yaml:"vibes,omitempty"`
	CarHealth int `json:"car_health,omitempty" yaml:"car_health,omitempty"`
}

// Activity is something a player can do at a location. Cost fields are
// subtracted independently; change fields are added independently. Each
// application clamps per resource bound.
type Activity struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`

	FuelCost  int `json:"fuel_cost,omitempty" yaml:"fuel_cost,omitempty"`
	MoneyCost int `json:"money_cost,omitempty" yaml:"money_cost,omitempty"`
	SnackCost int `json:"snack_cost,omitempty" yaml:"snack_cost,omitempty"`
	VibeCost  int `json:"vibe_cost,omitempty" yaml:"vibe_cost,omitempty"`
	TimeCost  int `json:"time_cost,omitempty" yaml:"time_cost,omitempty"`

	VibeChange      int `json:"vibe_change,omitempty" yaml:"vibe_change,omitempty"`
	FuelChange      int `json:"fuel_change,omitempty" yaml:"fuel_change,omitempty"`
	SnackChange     int `json:"snack_change,omitempty" yaml:"snack_change,omitempty"`
	MoneyChange     int `json:"money_change,omitempty" yaml:"money_change,omitempty"`
	CarHealthChange int `json:"car_health_change,omitempty" yaml:"car_health_change,omitempty"`

	EventChance       float64            `json:"event_chance,omitempty" yaml:"event_chance,omitempty"`
	RequiredResources *RequiredResources `json:"required_resources,omitempty" yaml:"required_resources,omitempty"`
}

// Event is a stateless narrative record from the catalog. Applying one
// never mutates the record itself.
type Event struct {
	ID      string    `json:"id" yaml:"id"`
	Type    EventType `json:"type" yaml:"type"`
	Message string    `json:"message" yaml:"message"`
	Icon    string    `json:"icon,omitempty" yaml:"icon,omitempty"`

	VibeChange      int `json:"vibe_change,omitempty" yaml:"vibe_change,omitempty"`
	FuelChange      int `json:"fuel_change,omitempty" yaml:"fuel_change,omitempty"`
	SnackChange     int `json:"snack_change,omitempty" yaml:"snack_change,omitempty"`
	MoneyChange     int `json:"money_change,omitempty" yaml:"money_change,omitempty"`
	CarHealthChange int `json:"car_health_change,omitempty" yaml:"car_health_change,omitempty"`
}

// Location is a node in the travel graph. Connections are asymmetric:
// an edge to a destination does not imply the return edge exists.
type Location struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Connections map[string]int `json:"connections" yaml:"connections"` // destination ID -> fuel cost
	Activities  []Activity     `json:"activities,omitempty" yaml:"activities,omitempty"`

	// ActivityNames is the legacy authoring format: bare names that are
	// adapted into synthetic activities at this boundary.
	ActivityNames []string `json:"activity_names,omitempty" yaml:"activity_names,omitempty"`

	EventChance float64 `json:"event_chance" yaml:"event_chance"`
}

// DefaultEventChance is used for travel into a location that does not
// declare its own ambient chance.
const DefaultEventChance = 0.15

// World is the session's static model: the location graph plus the event
// catalog. It is replaced wholesale on reload and edited piecewise only
// through the admin surface.
type World struct {
	Locations map[string]*Location
	Events    []Event
}

// New builds a World from a location list and event catalog.
func New(locations []*Location, events []Event) *World {
	w := &World{
		Locations: make(map[string]*Location, len(locations)),
		Events:    events,
	}
	for _, loc := range locations {
		w.Locations[loc.ID] = loc
	}
	return w
}

// Location returns the location for an ID, or nil if unknown.
func (w *World) Location(id string) *Location {
	return w.Locations[id]
}

// StartLocation resolves the session's starting point: the canonical
// trailhead if present, otherwise the first location in sorted ID order.
// Returns "" only for an empty world.
const canonicalStart = "Portland"

func (w *World) StartLocation() string {
	if _, ok := w.Locations[canonicalStart]; ok {
		return canonicalStart
	}
	ids := make([]string, 0, len(w.Locations))
	for id := range w.Locations {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return ""
	}
	sort.Strings(ids)
	return ids[0]
}

// ActivitiesFor returns the canonical activity list for a location,
// adapting any legacy bare-name entries on the way out.
func (w *World) ActivitiesFor(locationID string) []Activity {
	loc := w.Locations[locationID]
	if loc == nil {
		return nil
	}
	if len(loc.Activities) > 0 {
		return loc.Activities
	}
	if len(loc.ActivityNames) > 0 {
		acts := make([]Activity, 0, len(loc.ActivityNames))
		for _, name := range loc.ActivityNames {
			acts = append(acts, LegacyActivity(name))
		}
		return acts
	}
	return nil
}

// FindActivity looks up an activity by ID at the given location.
func (w *World) FindActivity(locationID, activityID string) (*Activity, error) {
	for _, a := range w.ActivitiesFor(locationID) {
		if a.ID == activityID {
			act := a
			return &act, nil
		}
	}
	return nil, fmt.Errorf("activity %q not found at %q", activityID, locationID)
}

// LocationList returns locations in sorted ID order, for stable
// serialization and listing.
func (w *World) LocationList() []*Location {
	ids := make([]string, 0, len(w.Locations))
	for id := range w.Locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	locs := make([]*Location, 0, len(ids))
	for _, id := range ids {
		locs = append(locs, w.Locations[id])
	}
	return locs
}
