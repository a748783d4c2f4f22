package engine

import (
	"fmt"
	"strings"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

// ActivityCheck is the result of validating an activity against the
// current player state.
type ActivityCheck struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons,omitempty"`
}

// CheckActivity reports whether the player can perform an activity right
// now. It is a pure query: no mutation, no side effects. Each unpayable
// cost and each unmet minimum threshold contributes one reason.
func CheckActivity(a *world.Activity, p *state.PlayerState) ActivityCheck {
	var reasons []string

	if a.FuelCost > 0 && p.Fuel < a.FuelCost {
		reasons = append(reasons, fmt.Sprintf("Need %d fuel (have %d)", a.FuelCost, p.Fuel))
	}
	if a.MoneyCost > 0 && p.Money < a.MoneyCost {
		reasons = append(reasons, fmt.Sprintf("Need %d money (have %d)", a.MoneyCost, p.Money))
	}
	if a.SnackCost > 0 && p.Snacks < a.SnackCost {
		reasons = append(reasons, fmt.Sprintf("Need %d snacks (have %d)", a.SnackCost, p.Snacks))
	}
	if a.VibeCost > 0 && p.Vibes < a.VibeCost {
		reasons = append(reasons, fmt.Sprintf("Need %d vibes (have %d)", a.VibeCost, p.Vibes))
	}

	if req := a.RequiredResources; req != nil {
		if req.Fuel > 0 && p.Fuel < req.Fuel {
			reasons = append(reasons, fmt.Sprintf("Need at least %d fuel", req.Fuel))
		}
		if req.Money > 0 && p.Money < req.Money {
			reasons = append(reasons, fmt.Sprintf("Need at least %d money", req.Money))
		}
		if req.Vibes > 0 && p.Vibes < req.Vibes {
			reasons = append(reasons, fmt.Sprintf("Need at least %d vibes", req.Vibes))
		}
		if req.CarHealth > 0 && p.CarHealth < req.CarHealth {
			reasons = append(reasons, fmt.Sprintf("Car needs at least %d health", req.CarHealth))
		}
	}

	return ActivityCheck{Allowed: len(reasons) == 0, Reasons: reasons}
}

// ApplyActivity mutates the player state with an activity's costs and
// effects and returns the narrated outcome. Deterministic: any follow-up
// event roll belongs to the caller.
//
// Costs are one pass in fixed field order, each an unconditional
// subtraction floored at zero; effects are a second pass, each an
// addition clamped to the resource bound. Negative effect values are
// applied but not narrated as gains.
func ApplyActivity(a *world.Activity, p *state.PlayerState) string {
	var costs, gains []string

	if a.FuelCost > 0 {
		p.AddFuel(-a.FuelCost)
		costs = append(costs, fmt.Sprintf("%d fuel", a.FuelCost))
	}
	if a.MoneyCost > 0 {
		p.AddMoney(-a.MoneyCost)
		costs = append(costs, fmt.Sprintf("$%d", a.MoneyCost))
	}
	if a.SnackCost > 0 {
		p.AddSnacks(-a.SnackCost)
		costs = append(costs, fmt.Sprintf("%d snacks", a.SnackCost))
	}
	if a.VibeCost > 0 {
		p.AddVibes(-a.VibeCost)
		costs = append(costs, fmt.Sprintf("%d vibes", a.VibeCost))
	}
	if a.TimeCost > 0 {
		p.AdvanceDays(a.TimeCost)
		if a.TimeCost == 1 {
			costs = append(costs, "1 day")
		} else {
			costs = append(costs, fmt.Sprintf("%d days", a.TimeCost))
		}
	}

	if a.VibeChange != 0 {
		p.AddVibes(a.VibeChange)
		if a.VibeChange > 0 {
			gains = append(gains, fmt.Sprintf("%d vibes", a.VibeChange))
		}
	}
	if a.FuelChange != 0 {
		p.AddFuel(a.FuelChange)
		if a.FuelChange > 0 {
			gains = append(gains, fmt.Sprintf("%d fuel", a.FuelChange))
		}
	}
	if a.SnackChange != 0 {
		p.AddSnacks(a.SnackChange)
		if a.SnackChange > 0 {
			gains = append(gains, fmt.Sprintf("%d snacks", a.SnackChange))
		}
	}
	if a.MoneyChange != 0 {
		p.AddMoney(a.MoneyChange)
		if a.MoneyChange > 0 {
			gains = append(gains, fmt.Sprintf("$%d", a.MoneyChange))
		}
	}
	if a.CarHealthChange != 0 {
		p.AddCarHealth(a.CarHealthChange)
		if a.CarHealthChange > 0 {
			gains = append(gains, fmt.Sprintf("%d car health", a.CarHealthChange))
		}
	}

	msg := fmt.Sprintf("Completed: %s.", a.Name)
	if len(costs) > 0 {
		msg += fmt.Sprintf(" Cost: %s.", strings.Join(costs, ", "))
	}
	if len(gains) > 0 {
		msg += fmt.Sprintf(" Gained: %s.", strings.Join(gains, ", "))
	}
	return msg
}
