// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Game sessions are ephemeral: they are lost when the process restarts,
// only their history rows survive in SQLite.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs its callback under the write lock, which is how the server
//     serializes guesses against one game.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ClockWorkElementals/wordle-solver/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update runs fn on the stored game with exclusive access.
	// The error returned by fn is passed through.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete forgets a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map and the games themselves
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
