package state

// TimeOfDay is the current phase of the travel day. Core rules only ever
// set Day; Night is reachable through authored event or activity data.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "Day"
	TimeNight TimeOfDay = "Night"
)

// Resource bounds. Fuel, vibes and car health share the percentage scale;
// snacks ride in a 20-slot cooler; money has no ceiling.
const (
	MaxFuel      = 100
	MaxVibes     = 100
	MaxCarHealth = 100
	MaxSnacks    = 20
)

// PlayerState is the mutable resource vector for one travel session.
// It is mutated only by the engines in pkg/engine; every mutation clamps,
// so collaborators never observe an out-of-range value.
type PlayerState struct {
	Fuel            int       `json:"fuel"`
	Snacks          int       `json:"snacks"`
	Money           int       `json:"money"`
	Vibes           int       `json:"vibes"`
	CarHealth       int       `json:"car_health"`
	DaysTraveled    int       `json:"days_traveled"`
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	CurrentLocation string    `json:"current_location"`
}

// NewPlayerState returns the baseline state for a fresh session.
func NewPlayerState(startLocation string) *PlayerState {
	return &PlayerState{
		Fuel:            100,
		Snacks:          10,
		Money:           200,
		Vibes:           75,
		CarHealth:       100,
		DaysTraveled:    0,
		TimeOfDay:       TimeDay,
		CurrentLocation: startLocation,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddFuel applies a fuel delta, clamped to [0,100].
func (p *PlayerState) AddFuel(delta int) {
	p.Fuel = clamp(p.Fuel+delta, 0, MaxFuel)
}

// AddVibes applies a vibes delta, clamped to [0,100].
func (p *PlayerState) AddVibes(delta int) {
	p.Vibes = clamp(p.Vibes+delta, 0, MaxVibes)
}

// AddSnacks applies a snacks delta, clamped to [0,20].
func (p *PlayerState) AddSnacks(delta int) {
	p.Snacks = clamp(p.Snacks+delta, 0, MaxSnacks)
}

// AddMoney applies a money delta, floored at zero.
func (p *PlayerState) AddMoney(delta int) {
	if p.Money += delta; p.Money < 0 {
		p.Money = 0
	}
}

// AddCarHealth applies a car health delta, clamped to [0,100].
func (p *PlayerState) AddCarHealth(delta int) {
	p.CarHealth = clamp(p.CarHealth+delta, 0, MaxCarHealth)
}

// AdvanceDays moves the calendar forward and resets the clock to Day.
func (p *PlayerState) AdvanceDays(days int) {
	p.DaysTraveled += days
	p.TimeOfDay = TimeDay
}

// Clone returns a copy of the state. Engines that report snapshots hand
// out clones so callers cannot mutate the live session state.
func (p *PlayerState) Clone() *PlayerState {
	c := *p
	return &c
}

// GameOverReason names a terminal condition. Empty means the game is live.
type GameOverReason string

const (
	ReasonNone         GameOverReason = ""
	ReasonLostVibes    GameOverReason = "lost_vibes"
	ReasonLostFuelCash GameOverReason = "lost_fuel_money"
	ReasonLostCar      GameOverReason = "lost_car"
)
