package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClockWorkElementals/wordle-solver/internal/db"
	"github.com/ClockWorkElementals/wordle-solver/internal/words"
)

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 18, 22, 59, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 500)
	assert.Equal(t, a, WordIndex(later, "salt", 500), "same UTC day, same word")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 500)
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	// Across a month of days the salt must change at least one pick.
	differs := false
	for d := 0; d < 30; d++ {
		ts := day.AddDate(0, 0, d)
		if WordIndex(ts, "salt", 500) != WordIndex(ts, "pepper", 500) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestToday(t *testing.T) {
	lex := words.FromWords("crane", "sonic", "sound", "cat")
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	p, err := Today(day, "salt", 5, lex)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", p.Date)
	assert.Equal(t, WordIndex(day, "salt", 3), p.Index)
	assert.Contains(t, []string{"crane", "sonic", "sound"}, p.Secret)

	again, err := Today(day.Add(time.Hour), "salt", 5, lex)
	require.NoError(t, err)
	assert.Equal(t, p, again)

	p, err = Today(day, "salt", 3, lex)
	require.NoError(t, err)
	assert.Equal(t, "cat", p.Secret)

	_, err = Today(day, "salt", 7, lex)
	assert.ErrorIs(t, err, words.ErrNoWords)
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	assert.Equal(t, "2026-10-19", DateKey(time.Date(2026, 10, 18, 21, 0, 0, 0, loc)))
}

func TestStore(t *testing.T) {
	conn, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	defer conn.Close()
	s := NewStore(conn)
	ctx := context.Background()

	played, err := s.AlreadyPlayed(ctx, "u1", "2026-10-18")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u1", Date: "2026-10-18", Guesses: 4, ElapsedMs: 9000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u2", Date: "2026-10-18", Guesses: 3, ElapsedMs: 9000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u3", Date: "2026-10-18", Guesses: 6, ElapsedMs: 1000}))
	// duplicate for u1 is ignored
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u1", Date: "2026-10-18", Guesses: 1, ElapsedMs: 1}))

	played, err = s.AlreadyPlayed(ctx, "u1", "2026-10-18")
	require.NoError(t, err)
	assert.True(t, played)

	top, err := s.Leaderboard(ctx, "2026-10-18", 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"u3", "u2", "u1"}, []string{top[0].UserID, top[1].UserID, top[2].UserID})

	empty, err := s.Leaderboard(ctx, "2000-01-01", 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
