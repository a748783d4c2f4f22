package engine

import (
	"testing"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

func TestCheckActivity(t *testing.T) {
	tests := []struct {
		name            string
		activity        world.Activity
		setup           func(p *state.PlayerState)
		expectAllowed   bool
		expectedReasons []string
	}{
		{
			name:          "free activity always allowed",
			activity:      world.Activity{ID: "stroll", Name: "Stroll", VibeChange: 3},
			expectAllowed: true,
		},
		{
			name:          "affordable costs",
			activity:      world.Activity{ID: "meal", Name: "Meal", MoneyCost: 20, VibeChange: 10},
			expectAllowed: true,
		},
		{
			name:     "unaffordable money",
			activity: world.Activity{ID: "spa", Name: "Spa Day", MoneyCost: 500},
			expectedReasons: []string{
				"Need 500 money (have 200)",
			},
		},
		{
			name:     "multiple failures reported together",
			activity: world.Activity{ID: "trek", Name: "Trek", FuelCost: 30, MoneyCost: 50, SnackCost: 5},
			setup: func(p *state.PlayerState) {
				p.Fuel = 10
				p.Money = 20
				p.Snacks = 2
			},
			expectedReasons: []string{
				"Need 30 fuel (have 10)",
				"Need 50 money (have 20)",
				"Need 5 snacks (have 2)",
			},
		},
		{
			name: "vibe cost checked",
			activity: world.Activity{ID: "club", Name: "Night Out", VibeCost: 40},
			setup: func(p *state.PlayerState) {
				p.Vibes = 30
			},
			expectedReasons: []string{
				"Need 40 vibes (have 30)",
			},
		},
		{
			name: "required thresholds are not spent",
			activity: world.Activity{
				ID: "repair", Name: "Repair",
				RequiredResources: &world.RequiredResources{Money: 100, CarHealth: 50},
			},
			setup: func(p *state.PlayerState) {
				p.Money = 150
				p.CarHealth = 30
			},
			expectedReasons: []string{
				"Car needs at least 50 health",
			},
		},
		{
			name: "threshold and cost failures combine",
			activity: world.Activity{
				ID: "tour", Name: "Tour",
				MoneyCost:         50,
				RequiredResources: &world.RequiredResources{Vibes: 60},
			},
			setup: func(p *state.PlayerState) {
				p.Money = 10
				p.Vibes = 40
			},
			expectedReasons: []string{
				"Need 50 money (have 10)",
				"Need at least 60 vibes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := state.NewPlayerState("Portland")
			if tt.setup != nil {
				tt.setup(p)
			}
			before := *p

			check := CheckActivity(&tt.activity, p)

			if *p != before {
				t.Error("CheckActivity must not mutate player state")
			}
			if tt.expectAllowed != (len(tt.expectedReasons) == 0) {
				t.Fatal("test case is inconsistent")
			}
			if check.Allowed != tt.expectAllowed {
				t.Errorf("Expected allowed=%v, got %v (reasons: %v)", tt.expectAllowed, check.Allowed, check.Reasons)
			}
			if len(check.Reasons) != len(tt.expectedReasons) {
				t.Fatalf("Expected %d reasons, got %v", len(tt.expectedReasons), check.Reasons)
			}
			for i, want := range tt.expectedReasons {
				if check.Reasons[i] != want {
					t.Errorf("Reason %d: expected %q, got %q", i, want, check.Reasons[i])
				}
			}
		})
	}
}

func TestApplyActivity(t *testing.T) {
	tests := []struct {
		name            string
		activity        world.Activity
		setup           func(p *state.PlayerState)
		expectedMessage string
		check           func(t *testing.T, p *state.PlayerState)
	}{
		{
			name:            "fuel cost and vibe gain",
			activity:        world.Activity{ID: "drive", Name: "Scenic Drive", FuelCost: 20, VibeChange: 10},
			expectedMessage: "Completed: Scenic Drive. Cost: 20 fuel. Gained: 10 vibes.",
			check: func(t *testing.T, p *state.PlayerState) {
				if p.Fuel != 80 {
					t.Errorf("Expected fuel 80, got %d", p.Fuel)
				}
				if p.Vibes != 85 {
					t.Errorf("Expected vibes 85, got %d", p.Vibes)
				}
			},
		},
		{
			name: "money cost formatted as dollars",
			activity: world.Activity{
				ID: "meal", Name: "Food Cart Crawl",
				MoneyCost: 25, SnackCost: 1, VibeChange: 8, SnackChange: 3,
			},
			expectedMessage: "Completed: Food Cart Crawl. Cost: $25, 1 snacks. Gained: 8 vibes, 3 snacks.",
			check: func(t *testing.T, p *state.PlayerState) {
				if p.Money != 175 {
					t.Errorf("Expected money 175, got %d", p.Money)
				}
				if p.Snacks != 12 {
					t.Errorf("Expected snacks 12 (10-1+3), got %d", p.Snacks)
				}
			},
		},
		{
			name:            "time cost advances the day",
			activity:        world.Activity{ID: "camp", Name: "Camp Out", TimeCost: 1, VibeChange: 15},
			expectedMessage: "Completed: Camp Out. Cost: 1 day. Gained: 15 vibes.",
			check: func(t *testing.T, p *state.PlayerState) {
				if p.DaysTraveled != 1 {
					t.Errorf("Expected 1 day traveled, got %d", p.DaysTraveled)
				}
			},
		},
		{
			name:            "multi-day cost pluralized",
			activity:        world.Activity{ID: "trek", Name: "Backpacking Trek", TimeCost: 3},
			expectedMessage: "Completed: Backpacking Trek. Cost: 3 days.",
		},
		{
			name:            "negative effect applied but not narrated",
			activity:        world.Activity{ID: "dive", Name: "Dive Bar", MoneyCost: 15, VibeChange: 5, CarHealthChange: -10},
			expectedMessage: "Completed: Dive Bar. Cost: $15. Gained: 5 vibes.",
			check: func(t *testing.T, p *state.PlayerState) {
				if p.CarHealth != 90 {
					t.Errorf("Expected car health 90, got %d", p.CarHealth)
				}
			},
		},
		{
			name:     "gains clamp at the resource bound",
			activity: world.Activity{ID: "nap", Name: "Power Nap", VibeChange: 50},
			setup: func(p *state.PlayerState) {
				p.Vibes = 80
			},
			expectedMessage: "Completed: Power Nap. Gained: 50 vibes.",
			check: func(t *testing.T, p *state.PlayerState) {
				if p.Vibes != 100 {
					t.Errorf("Expected vibes clamped to 100, got %d", p.Vibes)
				}
			},
		},
		{
			name:            "free activity narrates nothing extra",
			activity:        world.Activity{ID: "sit", Name: "People Watch"},
			expectedMessage: "Completed: People Watch.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := state.NewPlayerState("Portland")
			if tt.setup != nil {
				tt.setup(p)
			}

			msg := ApplyActivity(&tt.activity, p)

			if msg != tt.expectedMessage {
				t.Errorf("Expected message %q, got %q", tt.expectedMessage, msg)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}
