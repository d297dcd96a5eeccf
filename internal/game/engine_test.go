package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClockWorkElementals/wordle-solver/internal/constraint"
)

// wordSet is a minimal Lexicon for tests.
type wordSet map[string]bool

func (w wordSet) Contains(s string) bool { return w[s] }

func lexicon(words ...string) wordSet {
	out := wordSet{}
	for _, w := range words {
		out[w] = true
	}
	return out
}

var dict = lexicon("sonic", "sound", "sorts", "tonic", "bebop", "ebbed", "sissy",
	"ulcer", "eerie", "crane", "adieu", "pious", "lofty", "mummy", "stone", "notes")

const (
	G = Green
	Y = Yellow
	X = Grey
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   []Color
	}{
		{"exact match", "sonic", "sonic", []Color{G, G, G, G, G}},
		{"nothing shared", "sonic", "ebbed", []Color{X, X, X, X, X}},
		{"anagram", "stone", "notes", []Color{Y, Y, Y, Y, Y}},
		{"duplicate in both, one green", "ebbed", "bebop", []Color{Y, Y, G, X, X}},
		{"guess repeats a single secret letter", "sonic", "sissy", []Color{G, Y, X, X, X}},
		{"leftmost extra occurrence gets the yellow", "ulcer", "eerie", []Color{Y, X, Y, X, X}},
		{"green consumes the budget before yellows", "lofty", "mummy", []Color{X, X, X, X, G}},
		{"secret repeats, guess once", "mummy", "lofty", []Color{X, X, X, X, G}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.secret, tt.guess))
		})
	}
}

func TestScore_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Score("sonic", "son") })
}

func TestGuess_Correct(t *testing.T) {
	g := New("sonic", dict)
	res, err := g.Guess("sonic")
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, 1, res.GuessNumber)
	assert.Equal(t, 1, g.GuessCount())
	assert.Equal(t, Won, g.State())
	assert.Equal(t, "🟩🟩🟩🟩🟩", res.Pattern)
	assert.Equal(t, map[int]rune{0: 's', 1: 'o', 2: 'n', 3: 'i', 4: 'c'}, res.Constraints.Positional)

	_, err = g.Guess("sound")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 1, g.GuessCount())
}

func TestGuess_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		want  error
	}{
		{"too short", "son", ErrInvalidGuessLength},
		{"too long", "sonics", ErrInvalidGuessLength},
		{"not a word", "zzzzz", ErrNotADictionaryWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New("sonic", dict)
			before := g.Constraints()

			_, err := g.Guess(tt.guess)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 0, g.GuessCount())
			assert.Equal(t, InProgress, g.State())
			assert.Equal(t, before, g.Constraints())
		})
	}
}

func TestGuess_LengthCheckedBeforeLimit(t *testing.T) {
	g := New("sonic", dict)
	for i := 0; i < MaxGuesses; i++ {
		_, err := g.Guess("crane")
		require.NoError(t, err)
	}
	_, err := g.Guess("son")
	assert.ErrorIs(t, err, ErrInvalidGuessLength)
	_, err = g.Guess("sonic")
	assert.ErrorIs(t, err, ErrGuessLimitExceeded)
}

func TestGuess_Lost(t *testing.T) {
	g := New("sonic", dict)
	words := []string{"crane", "adieu", "pious", "lofty", "stone", "sound"}
	for i, w := range words {
		res, err := g.Guess(w)
		require.NoError(t, err)
		assert.Equal(t, i+1, res.GuessNumber)
		assert.False(t, res.Correct)
		if i < len(words)-1 {
			assert.Equal(t, InProgress, res.State)
		}
	}
	assert.Equal(t, Lost, g.State())
	assert.True(t, g.Finished())
	assert.Equal(t, 0, g.Remaining())

	_, err := g.Guess("sonic")
	assert.ErrorIs(t, err, ErrGuessLimitExceeded)
	assert.Equal(t, Lost, g.State())
}

func TestGuess_WinOnLastGuess(t *testing.T) {
	g := New("sonic", dict)
	for _, w := range []string{"crane", "adieu", "pious", "lofty", "stone"} {
		_, err := g.Guess(w)
		require.NoError(t, err)
	}
	res, err := g.Guess("sonic")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, Won, g.State())
}

func TestGuess_ConstraintPolicy(t *testing.T) {
	g := New("ebbed", dict)

	res, err := g.Guess("bebop")
	require.NoError(t, err)
	assert.Equal(t, []Color{Y, Y, G, X, X}, res.Colors)
	assert.Equal(t, constraint.NewSet('o', 'p'), res.Constraints.Absent)
	assert.Equal(t, map[int]rune{2: 'b'}, res.Constraints.Positional)
	assert.Equal(t, []rune{'b', 'e'}, res.Constraints.Misplaced)

	// Second guess: greens and greys accumulate, yellows are replaced.
	res, err = g.Guess("crane")
	require.NoError(t, err)
	assert.Equal(t, []Color{X, X, X, X, Y}, res.Colors)
	assert.Equal(t, constraint.NewSet('o', 'p', 'c', 'r', 'a', 'n'), res.Constraints.Absent)
	assert.Equal(t, map[int]rune{2: 'b'}, res.Constraints.Positional)
	assert.Equal(t, []rune{'e'}, res.Constraints.Misplaced)
}

func TestGuess_BudgetGreyIsNotAbsent(t *testing.T) {
	g := New("sonic", dict)
	res, err := g.Guess("sissy")
	require.NoError(t, err)
	assert.Equal(t, []Color{G, Y, X, X, X}, res.Colors)
	// 's' is in the secret, so it must not become absent even though two of
	// its tiles are grey.
	assert.Equal(t, constraint.NewSet('y'), res.Constraints.Absent)
	assert.Equal(t, []rune{'i'}, res.Constraints.Misplaced)
}

func TestGuess_SnapshotsAreIndependent(t *testing.T) {
	g := New("sonic", dict)
	res, err := g.Guess("tonic")
	require.NoError(t, err)
	res.Constraints.Positional[0] = 'z'
	res.Constraints.Absent.Add('q')

	c := g.Constraints()
	assert.NotContains(t, c.Positional, 0)
	assert.False(t, c.Absent.Has('q'))
}

func TestNilLexiconRejectsEverything(t *testing.T) {
	g := New("sonic", nil)
	_, err := g.Guess("sonic")
	assert.ErrorIs(t, err, ErrNotADictionaryWord)
}

func TestColorEmoji(t *testing.T) {
	assert.Equal(t, "🟩🟨⬛", Pattern([]Color{Green, Yellow, Grey}))
	assert.Equal(t, "?", unknown.Emoji())
}
