package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/pkg/engine"
	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

// Storage is the persistence surface: world data (locations and events)
// plus per-session player saves. Not-found is (nil, nil), never an
// error; the core treats any failure as "use defaults and log", so
// nothing here is allowed to be fatal to a session.
type Storage interface {
	// Ping tests the storage connection
	Ping(ctx context.Context) error

	// Close closes the storage connection
	Close() error

	// GetLocations returns all stored locations, nil if none are stored
	GetLocations(ctx context.Context) ([]*world.Location, error)

	// SaveLocations replaces the stored location set wholesale
	SaveLocations(ctx context.Context, locations []*world.Location) error

	// GetEvents returns the stored event catalog, nil if none is stored
	GetEvents(ctx context.Context) ([]world.Event, error)

	// SaveEvents replaces the stored event catalog wholesale
	SaveEvents(ctx context.Context, events []world.Event) error

	// LoadGameState retrieves a player save by ID, nil if absent
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.SavedState, error)

	// SaveGameState writes a player save
	SaveGameState(ctx context.Context, id uuid.UUID, save *state.SavedState) error

	// DeleteGameState removes a player save
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}

// The lifecycle's repository capability is a subset of Storage.
var _ engine.Repository = (Storage)(nil)
