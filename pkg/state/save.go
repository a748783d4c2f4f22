package state

// SavedState is the persisted save shape. Pointer fields distinguish a
// stored zero from an absent field, so partial or older saves merge
// cleanly over the baseline.
type SavedState struct {
	Fuel            *int       `json:"fuel,omitempty"`
	Snacks          *int       `json:"snacks,omitempty"`
	Money           *int       `json:"money,omitempty"`
	Vibes           *int       `json:"vibes,omitempty"`
	CarHealth       *int       `json:"car_health,omitempty"`
	DaysTraveled    *int       `json:"days_traveled,omitempty"`
	TimeOfDay       *TimeOfDay `json:"time_of_day,omitempty"`
	CurrentLocation string     `json:"current_location,omitempty"`
}

// ToSaved converts a live state into its persisted shape.
func (p *PlayerState) ToSaved() *SavedState {
	fuel, snacks, money := p.Fuel, p.Snacks, p.Money
	vibes, car, days := p.Vibes, p.CarHealth, p.DaysTraveled
	tod := p.TimeOfDay
	return &SavedState{
		Fuel:            &fuel,
		Snacks:          &snacks,
		Money:           &money,
		Vibes:           &vibes,
		CarHealth:       &car,
		DaysTraveled:    &days,
		TimeOfDay:       &tod,
		CurrentLocation: p.CurrentLocation,
	}
}

// Merge overlays a saved state onto a baseline. Absent fields keep the
// baseline value. The caller is responsible for re-validating
// CurrentLocation against the live world before trusting it.
func Merge(baseline *PlayerState, saved *SavedState) *PlayerState {
	merged := baseline.Clone()
	if saved == nil {
		return merged
	}
	if saved.Fuel != nil {
		merged.Fuel = *saved.Fuel
	}
	if saved.Snacks != nil {
		merged.Snacks = *saved.Snacks
	}
	if saved.Money != nil {
		merged.Money = *saved.Money
	}
	if saved.Vibes != nil {
		merged.Vibes = *saved.Vibes
	}
	if saved.CarHealth != nil {
		merged.CarHealth = *saved.CarHealth
	}
	if saved.DaysTraveled != nil {
		merged.DaysTraveled = *saved.DaysTraveled
	}
	if saved.TimeOfDay != nil {
		merged.TimeOfDay = *saved.TimeOfDay
	}
	if saved.CurrentLocation != "" {
		merged.CurrentLocation = saved.CurrentLocation
	}
	return merged
}
