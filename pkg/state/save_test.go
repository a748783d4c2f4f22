package state

import (
	"encoding/json"
	"testing"
)

func TestMerge_FullSave(t *testing.T) {
	p := NewPlayerState("Portland")
	p.Fuel = 40
	p.Snacks = 3
	p.Money = 55
	p.Vibes = 20
	p.CarHealth = 80
	p.DaysTraveled = 7
	p.TimeOfDay = TimeNight
	p.CurrentLocation = "Bend"

	merged := Merge(NewPlayerState("Portland"), p.ToSaved())

	if *merged != *p {
		t.Errorf("Expected merged state %+v, got %+v", *p, *merged)
	}
}

func TestMerge_PartialSave(t *testing.T) {
	fuel := 30
	saved := &SavedState{
		Fuel:            &fuel,
		CurrentLocation: "Eugene",
	}

	merged := Merge(NewPlayerState("Portland"), saved)

	if merged.Fuel != 30 {
		t.Errorf("Expected fuel 30 from save, got %d", merged.Fuel)
	}
	if merged.CurrentLocation != "Eugene" {
		t.Errorf("Expected location Eugene from save, got %q", merged.CurrentLocation)
	}
	// Absent fields keep the baseline.
	if merged.Money != 200 {
		t.Errorf("Expected baseline money 200, got %d", merged.Money)
	}
	if merged.Vibes != 75 {
		t.Errorf("Expected baseline vibes 75, got %d", merged.Vibes)
	}
}

func TestMerge_ZeroIsNotAbsent(t *testing.T) {
	// A stored zero must survive the merge; only missing fields fall back.
	data := []byte(`{"fuel":0,"money":0,"current_location":"Salem"}`)
	var saved SavedState
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Failed to unmarshal save: %v", err)
	}

	merged := Merge(NewPlayerState("Portland"), &saved)

	if merged.Fuel != 0 {
		t.Errorf("Expected stored fuel 0, got %d", merged.Fuel)
	}
	if merged.Money != 0 {
		t.Errorf("Expected stored money 0, got %d", merged.Money)
	}
	if merged.Snacks != 10 {
		t.Errorf("Expected baseline snacks 10, got %d", merged.Snacks)
	}
}

func TestMerge_NilSave(t *testing.T) {
	baseline := NewPlayerState("Portland")
	merged := Merge(baseline, nil)

	if *merged != *baseline {
		t.Errorf("Expected baseline %+v, got %+v", *baseline, *merged)
	}
	if merged == baseline {
		t.Error("Merge must return a copy, not the baseline itself")
	}
}
