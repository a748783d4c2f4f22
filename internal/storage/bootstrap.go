package storage

import (
	"context"
	"log/slog"

	"github.com/oregontales/roadtrip/pkg/world"
)

// LoadWorld assembles the session world from storage, falling back to
// the stock data when storage is empty or unreadable. Mirrors the
// config-load path: failures degrade to defaults, never to a dead
// session.
func LoadWorld(ctx context.Context, s Storage, logger *slog.Logger) *world.World {
	locations, err := s.GetLocations(ctx)
	if err != nil {
		logger.Warn("Failed to load locations, using defaults", "error", err)
		locations = nil
	}
	if len(locations) == 0 {
		locations = world.DefaultLocations()
	}

	events, err := s.GetEvents(ctx)
	if err != nil {
		logger.Warn("Failed to load events, using defaults", "error", err)
		events = nil
	}
	if len(events) == 0 {
		events = world.DefaultEvents()
	}

	logger.Info("World loaded", "locations", len(locations), "events", len(events))
	return world.New(locations, events)
}

// SeedDefaults writes the stock world into empty storage. Existing data
// is left alone; returns whether anything was written.
func SeedDefaults(ctx context.Context, s Storage, logger *slog.Logger) (bool, error) {
	seeded := false

	locations, err := s.GetLocations(ctx)
	if err != nil {
		return false, err
	}
	if len(locations) == 0 {
		if err := s.SaveLocations(ctx, world.DefaultLocations()); err != nil {
			return false, err
		}
		seeded = true
	}

	events, err := s.GetEvents(ctx)
	if err != nil {
		return seeded, err
	}
	if len(events) == 0 {
		if err := s.SaveEvents(ctx, world.DefaultEvents()); err != nil {
			return seeded, err
		}
		seeded = true
	}

	if seeded {
		logger.Info("Seeded default world data")
	}
	return seeded, nil
}
