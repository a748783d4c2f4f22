package engine

import (
	"fmt"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

// TravelOutcome reports one travel attempt. A denied attempt carries the
// urgent low-fuel event, already applied; a successful one carries the
// narrated move.
type TravelOutcome struct {
	Message string
	Denied  bool
	Event   *world.Event
}

// Travel validates and executes a move to a connected location.
//
// Unknown destinations are an error with no state change. Insufficient
// fuel is a denial: the synthetic low-fuel event fires (its own vibe hit
// is the only mutation) and the player stays put. On success fuel is
// spent, the player moves, and the day advances.
func Travel(w *world.World, destinationID string, fuelCost int, p *state.PlayerState) (TravelOutcome, error) {
	dest := w.Location(destinationID)
	if dest == nil {
		return TravelOutcome{}, fmt.Errorf("unknown destination %q", destinationID)
	}

	if p.Fuel < fuelCost {
		ev := LowFuelWarning(dest.Name, fuelCost, p)
		return TravelOutcome{
			Message: "EVENT: " + ev.Message,
			Denied:  true,
			Event:   ev,
		}, nil
	}

	p.AddFuel(-fuelCost)
	p.CurrentLocation = destinationID
	p.AdvanceDays(1)

	return TravelOutcome{
		Message: fmt.Sprintf("Traveled to %s. Cost: %d fuel. Day %d.", dest.Name, fuelCost, p.DaysTraveled),
	}, nil
}

// AmbientChance resolves the post-travel event probability for a
// destination. A location that never declared one rolls at the default.
func AmbientChance(dest *world.Location) float64 {
	if dest.EventChance == 0 {
		return world.DefaultEventChance
	}
	return dest.EventChance
}
