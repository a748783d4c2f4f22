package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/pkg/state"
	"github.com/oregontales/roadtrip/pkg/world"
)

const welcomeMessage = "Welcome to Oregon Tales! Your journey begins..."
const restartMessage = "Welcome to Oregon Tales! Your journey begins anew..."

// Repository is the persistence capability the lifecycle consumes.
// Failures are non-fatal: the in-memory state stays authoritative and
// the next successful save catches up.
type Repository interface {
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.SavedState, error)
	SaveGameState(ctx context.Context, id uuid.UUID, save *state.SavedState) error
}

// ValidationError is a recoverable user-input failure: unknown
// destination, unknown activity, no route. No state was mutated.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ActionResult is what every player action returns upward: the new state
// snapshot, the log lines this action appended, the event now pending
// acknowledgment (if any), and the terminal reason (if the game is over).
type ActionResult struct {
	State    *state.PlayerState   `json:"state"`
	Log      []string             `json:"log,omitempty"`
	Event    *world.Event         `json:"event,omitempty"`
	GameOver state.GameOverReason `json:"game_over,omitempty"`
}

// Snapshot is the full read-only view of a session.
type Snapshot struct {
	ID         uuid.UUID            `json:"id"`
	State      *state.PlayerState   `json:"state"`
	Location   *world.Location      `json:"location,omitempty"`
	Activities []world.Activity     `json:"activities,omitempty"`
	Log        []string             `json:"log"`
	Event      *world.Event         `json:"event,omitempty"`
	GameOver   state.GameOverReason `json:"game_over,omitempty"`
}

// Lifecycle orchestrates one player session: it sequences actions,
// evaluates the terminal predicate after every mutation, and persists
// through the Repository. The mutex serializes actions so concurrent
// HTTP requests cannot interleave a turn.
type Lifecycle struct {
	mu      sync.Mutex
	id      uuid.UUID
	world   *world.World
	player  *state.PlayerState
	repo    Repository
	events  *EventEngine
	logger  *slog.Logger
	log     []string
	pending *world.Event
	over    state.GameOverReason
}

// NewLifecycle starts a fresh session at the baseline state.
func NewLifecycle(id uuid.UUID, w *world.World, repo Repository, rng Rand, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{
		id:     id,
		world:  w,
		player: state.NewPlayerState(w.StartLocation()),
		repo:   repo,
		events: NewEventEngine(rng),
		logger: logger,
		log:    []string{welcomeMessage},
	}
}

// Resume restores a session from storage, merging the save over the
// baseline. A missing or unreadable save degrades to a fresh baseline;
// a stale saved location falls back to the start location.
func Resume(ctx context.Context, id uuid.UUID, w *world.World, repo Repository, rng Rand, logger *slog.Logger) *Lifecycle {
	lc := NewLifecycle(id, w, repo, rng, logger)

	saved, err := repo.LoadGameState(ctx, id)
	if err != nil {
		logger.Warn("Failed to load saved game, starting fresh", "id", id, "error", err)
		lc.appendLog("Could not load your save. Starting fresh.")
		lc.persist(ctx)
		return lc
	}
	if saved == nil {
		lc.appendLog("No save data found. Starting a new Oregon Tale!")
		lc.persist(ctx)
		return lc
	}

	merged := state.Merge(lc.player, saved)
	if w.Location(merged.CurrentLocation) == nil {
		merged.CurrentLocation = w.StartLocation()
	}
	lc.player = merged
	lc.appendLog("Game loaded successfully.")
	lc.checkGameOver()
	return lc
}

// ID returns the session's save identifier.
func (lc *Lifecycle) ID() uuid.UUID { return lc.id }

// Travel moves the player to a connected location, spending the route's
// fuel cost. Insufficient fuel raises the urgent low-fuel event instead;
// a successful arrival rolls for an ambient event at the destination's
// chance.
func (lc *Lifecycle) Travel(ctx context.Context, destinationID string) (*ActionResult, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.over != state.ReasonNone {
		return lc.refused(), nil
	}

	dest := lc.world.Location(destinationID)
	if dest == nil {
		return nil, validationErrorf("unknown destination %q", destinationID)
	}
	current := lc.world.Location(lc.player.CurrentLocation)
	if current == nil {
		return nil, validationErrorf("current location %q is not in the world", lc.player.CurrentLocation)
	}
	fuelCost, ok := current.Connections[destinationID]
	if !ok {
		return nil, validationErrorf("no route from %q to %q", lc.player.CurrentLocation, destinationID)
	}

	mark := len(lc.log)
	outcome, err := Travel(lc.world, destinationID, fuelCost, lc.player)
	if err != nil {
		return nil, validationErrorf("%v", err)
	}

	if outcome.Denied {
		// The low-fuel event is always surfaced; its vibe hit is the
		// only state change and is not persisted until the next save.
		lc.pending = outcome.Event
		lc.appendLog(outcome.Message)
		lc.checkGameOver()
		return lc.result(mark), nil
	}

	lc.appendLog(outcome.Message)
	lc.rollEvent(AmbientChance(dest))
	lc.checkGameOver()
	lc.persist(ctx)
	return lc.result(mark), nil
}

// Rest spends a snack to recover vibes and advances a day. Resting with
// an empty cooler costs 5 vibes instead and consumes nothing. The vibe
// bonus is larger when resting at night.
func (lc *Lifecycle) Rest(ctx context.Context) (*ActionResult, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.over != state.ReasonNone {
		return lc.refused(), nil
	}

	mark := len(lc.log)
	p := lc.player

	if p.Snacks <= 0 {
		p.AddVibes(-5)
		p.AdvanceDays(1)
		lc.appendLog("No snacks for a proper rest! Vibes dip.")
		lc.checkGameOver()
		return lc.result(mark), nil
	}

	vibeGain := 15
	if p.TimeOfDay == state.TimeNight {
		vibeGain = 25
	}
	p.AddVibes(vibeGain)
	p.AddSnacks(-1)
	p.AdvanceDays(1)
	lc.appendLog(fmt.Sprintf("Rested. Vibes +%d. Snack consumed. It's now Day %d.", vibeGain, p.DaysTraveled))
	lc.checkGameOver()
	lc.persist(ctx)
	return lc.result(mark), nil
}

// PerformActivity validates and applies one of the current location's
// activities, then rolls the activity's own bonus event chance.
func (lc *Lifecycle) PerformActivity(ctx context.Context, activityID string) (*ActionResult, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.over != state.ReasonNone {
		return lc.refused(), nil
	}

	activity, err := lc.world.FindActivity(lc.player.CurrentLocation, activityID)
	if err != nil {
		return nil, validationErrorf("%v", err)
	}

	mark := len(lc.log)
	if check := CheckActivity(activity, lc.player); !check.Allowed {
		lc.appendLog(fmt.Sprintf("Cannot perform %s: %s", activity.Name, strings.Join(check.Reasons, ", ")))
		return lc.result(mark), nil
	}

	lc.appendLog(ApplyActivity(activity, lc.player))
	if activity.EventChance > 0 {
		lc.rollEvent(activity.EventChance)
	}
	lc.checkGameOver()
	lc.persist(ctx)
	return lc.result(mark), nil
}

// Restart wipes the session back to baseline: fresh state, cleared
// terminal reason and pending event, start location re-resolved against
// the current world, and the fresh state persisted.
func (lc *Lifecycle) Restart(ctx context.Context) (*ActionResult, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.player = state.NewPlayerState(lc.world.StartLocation())
	lc.over = state.ReasonNone
	lc.pending = nil
	lc.log = []string{restartMessage}
	lc.persist(ctx)
	return lc.result(0), nil
}

// SaveNow persists the current state on demand.
func (lc *Lifecycle) SaveNow(ctx context.Context) (*ActionResult, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	mark := len(lc.log)
	if err := lc.repo.SaveGameState(ctx, lc.id, lc.player.ToSaved()); err != nil {
		lc.logger.Error("Failed to save game", "id", lc.id, "error", err)
		lc.appendLog("Error saving game. Your progress is safe in memory.")
		return lc.result(mark), nil
	}
	lc.appendLog("Game progress saved!")
	return lc.result(mark), nil
}

// AcknowledgeEvent clears the pending event modal.
func (lc *Lifecycle) AcknowledgeEvent() {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.pending = nil
}

// Snapshot returns the full read-only session view.
func (lc *Lifecycle) Snapshot() *Snapshot {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	snap := &Snapshot{
		ID:         lc.id,
		State:      lc.player.Clone(),
		Location:   lc.world.Location(lc.player.CurrentLocation),
		Activities: lc.world.ActivitiesFor(lc.player.CurrentLocation),
		Log:        append([]string(nil), lc.log...),
		Event:      lc.pending,
		GameOver:   lc.over,
	}
	return snap
}

// rollEvent draws against chance and, on a hit, applies and narrates the
// selected catalog event.
func (lc *Lifecycle) rollEvent(chance float64) {
	ev := lc.events.RollAmbient(lc.world, chance)
	if ev == nil {
		return
	}
	ApplyEvent(ev, lc.player)
	lc.pending = ev
	lc.appendLog("EVENT: " + ev.Message)
}

// checkGameOver evaluates the terminal predicate. Precedence is fixed:
// vibes, then the fuel-and-money combination, then the car. Fuel alone
// is not fatal while the player can still afford more.
func (lc *Lifecycle) checkGameOver() {
	if lc.over != state.ReasonNone {
		return
	}
	p := lc.player
	switch {
	case p.Vibes <= 0:
		lc.over = state.ReasonLostVibes
	case p.Fuel <= 0 && p.Money < 10:
		lc.over = state.ReasonLostFuelCash
	case p.CarHealth <= 0:
		lc.over = state.ReasonLostCar
	}
	if lc.over != state.ReasonNone {
		lc.logger.Info("Game over", "id", lc.id, "reason", lc.over, "days", p.DaysTraveled)
	}
}

// persist writes through the repository. Failures are logged and
// swallowed; the applied state change is never rolled back.
func (lc *Lifecycle) persist(ctx context.Context) {
	if err := lc.repo.SaveGameState(ctx, lc.id, lc.player.ToSaved()); err != nil {
		lc.logger.Error("Failed to persist game state", "id", lc.id, "error", err)
	}
}

func (lc *Lifecycle) appendLog(line string) {
	lc.log = append(lc.log, line)
}

// refused is the no-op result for actions attempted after game over.
func (lc *Lifecycle) refused() *ActionResult {
	return &ActionResult{
		State:    lc.player.Clone(),
		GameOver: lc.over,
	}
}

// result packages the state snapshot plus the log lines appended since
// mark.
func (lc *Lifecycle) result(mark int) *ActionResult {
	return &ActionResult{
		State:    lc.player.Clone(),
		Log:      append([]string(nil), lc.log[mark:]...),
		Event:    lc.pending,
		GameOver: lc.over,
	}
}
