package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/pkg/world"
)

// Manager tracks live sessions by save ID. A session not held in memory
// is resumed from storage on first touch; the world model is captured
// per session, so an admin world reload affects new sessions only.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Lifecycle
	world    *world.World
	repo     Repository
	logger   *slog.Logger
	newRand  func() Rand
}

// NewManager creates a session manager over the given world and
// repository. newRand supplies each session's random source; pass nil
// for the default entropy-seeded source.
func NewManager(w *world.World, repo Repository, logger *slog.Logger, newRand func() Rand) *Manager {
	if newRand == nil {
		newRand = NewRand
	}
	return &Manager{
		sessions: make(map[uuid.UUID]*Lifecycle),
		world:    w,
		repo:     repo,
		logger:   logger,
		newRand:  newRand,
	}
}

// Create starts a brand-new session and persists its baseline.
func (m *Manager) Create(ctx context.Context) *Lifecycle {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New()
	lc := NewLifecycle(id, m.world, m.repo, m.newRand(), m.logger)
	lc.persist(ctx)
	m.sessions[id] = lc
	return lc
}

// Get returns the live session for an ID, resuming it from storage if it
// is not in memory. The second return is false only when no save exists.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*Lifecycle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lc, ok := m.sessions[id]; ok {
		return lc, true
	}

	saved, err := m.repo.LoadGameState(ctx, id)
	if err != nil {
		m.logger.Warn("Failed to probe save before resume", "id", id, "error", err)
	}
	if saved == nil && err == nil {
		return nil, false
	}

	lc := Resume(ctx, id, m.world, m.repo, m.newRand(), m.logger)
	m.sessions[id] = lc
	return lc, true
}

// SetWorld swaps the world model used for sessions created or resumed
// from now on.
func (m *Manager) SetWorld(w *world.World) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.world = w
}

// World returns the manager's current world model.
func (m *Manager) World() *world.World {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world
}
