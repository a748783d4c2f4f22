package engine

import (
	"fmt"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

// lowFuelEventID marks the only runtime-constructed event; everything
// else comes from the catalog.
const lowFuelEventID = "LOW_FUEL_WARNING"

// EventEngine selects and applies randomized events. It is stateless
// between calls; which event is awaiting acknowledgment is owned by the
// lifecycle, not here.
type EventEngine struct {
	rng Rand
}

// NewEventEngine creates an event engine over an injected random source.
func NewEventEngine(rng Rand) *EventEngine {
	return &EventEngine{rng: rng}
}

// RollAmbient draws one uniform sample and, if it lands under chance,
// picks an event uniformly from the catalog. Returns nil when the roll
// misses or the catalog is empty. Ambient selection is deliberately
// uncorrelated with location or activity; any weighting is a data-level
// concern of the world model.
func (e *EventEngine) RollAmbient(w *world.World, chance float64) *world.Event {
	if len(w.Events) == 0 {
		return nil
	}
	if e.rng.Float64() >= chance {
		return nil
	}
	ev := w.Events[e.rng.IntN(len(w.Events))]
	return &ev
}

// ApplyEvent adds each effect field to the player state and clamps,
// the same rule as the activity effect pass.
func ApplyEvent(ev *world.Event, p *state.PlayerState) {
	p.AddVibes(ev.VibeChange)
	p.AddFuel(ev.FuelChange)
	p.AddSnacks(ev.SnackChange)
	p.AddMoney(ev.MoneyChange)
	p.AddCarHealth(ev.CarHealthChange)
}

// LowFuelWarning synthesizes the urgent out-of-fuel event for a denied
// travel attempt and applies it to the player state. The message quotes
// the fuel level before the vibe hit lands.
func LowFuelWarning(destinationName string, fuelNeeded int, p *state.PlayerState) *world.Event {
	ev := &world.Event{
		ID:         lowFuelEventID,
		Type:       world.EventUrgent,
		Message:    fmt.Sprintf("Not enough fuel (%d) for %s (%d needed). Find fuel!", p.Fuel, destinationName, fuelNeeded),
		VibeChange: -10,
	}
	ApplyEvent(ev, p)
	return ev
}
