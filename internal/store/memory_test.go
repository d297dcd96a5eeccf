package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClockWorkElementals/wordle-solver/internal/game"
	"github.com/ClockWorkElementals/wordle-solver/internal/words"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := game.New("sonic", words.FromWords("sonic", "sound"))

	_, err := s.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, g.ID))
	require.NoError(t, s.Delete(ctx, g.ID))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.Update(ctx, g.ID, func(*game.Game) error { return nil }), ErrNotFound)
}

func TestMemoryStore_UpdateSerializesGuesses(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := game.New("sonic", words.FromWords("sonic", "sound"))
	require.NoError(t, s.Save(ctx, g))

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(ctx, g.ID, func(g *game.Game) error {
				_, err := g.Guess("sound")
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else {
				assert.True(t, errors.Is(err, game.ErrGuessLimitExceeded), "unexpected %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, game.MaxGuesses, accepted)
	assert.Equal(t, game.Lost, g.State())
}
