package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClockWorkElementals/wordle-solver/internal/auth"
	"github.com/ClockWorkElementals/wordle-solver/internal/db"
)

func TestStore_Lifecycle(t *testing.T) {
	conn, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer conn.Close()
	ctx := context.Background()

	users := auth.NewUsers(conn)
	u, err := users.Create(ctx, "dave", "password123")
	require.NoError(t, err)

	s := NewStore(conn)
	anon := Owner{AnonymousID: "anon-1"}

	require.NoError(t, s.Start(ctx, "g1", anon, 5))
	require.NoError(t, s.RecordGuess(ctx, "g1", anon, "playing"))
	require.NoError(t, s.RecordGuess(ctx, "g1", anon, "won"))

	// guest games are invisible to the account until claimed
	rows, err := s.Recent(ctx, u.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	n, err := s.ClaimAnonymous(ctx, "anon-1", u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	owner := Owner{UserID: u.ID}
	require.NoError(t, s.Start(ctx, "g2", owner, 5))
	require.NoError(t, s.RecordGuess(ctx, "g2", owner, "lost"))

	rows, err = s.Recent(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byID := map[string]Row{rows[0].ID: rows[0], rows[1].ID: rows[1]}
	assert.Equal(t, "won", byID["g1"].Status)
	assert.Equal(t, 2, byID["g1"].Guesses)
	assert.NotEmpty(t, byID["g1"].FinishedAt)
	assert.Equal(t, "lost", byID["g2"].Status)
	assert.Equal(t, 1, byID["g2"].Guesses)

	// only the game finished under the account counts toward stats
	got, err := users.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.GamesPlayed)
	assert.Equal(t, 0, got.Wins)
	assert.Equal(t, 0, got.Streak)

	n, err = s.ClaimAnonymous(ctx, "", u.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
