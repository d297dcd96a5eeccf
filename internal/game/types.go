// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Color:   per-letter result of a guess (green/yellow/grey).
//   - State:   coarse session state (playing/won/lost).
//   - Result:  everything a caller needs after an accepted guess.
//   - Lexicon: the dictionary lookup a game validates guesses against.
//   - Rejection errors returned by Game.Guess.

package game

import (
	"errors"

	"github.com/ClockWorkElementals/wordle-solver/internal/constraint"
)

// MaxGuesses is the number of guesses a session allows.
const MaxGuesses = 6

// Color represents the evaluation result for a single letter in a guess.
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the secret but in a different position,
//     and not all of its occurrences are already accounted for.
//   - "grey":   letter does not exist in the secret, or every occurrence is
//     already accounted for by greens and earlier yellows.
type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Grey   Color = "grey"

	// unknown only exists while a guess is being scored.
	unknown Color = ""
)

// Emoji returns the tile used when sharing a result.
func (c Color) Emoji() string {
	switch c {
	case Green:
		return "🟩"
	case Yellow:
		return "🟨"
	case Grey:
		return "⬛"
	}
	return "?"
}

// Pattern renders colors as a row of emoji tiles.
func Pattern(colors []Color) string {
	var b []byte
	for _, c := range colors {
		b = append(b, c.Emoji()...)
	}
	return string(b)
}

// State is the lifecycle of a game. Won and Lost are terminal.
type State string

const (
	InProgress State = "playing"
	Won        State = "won"
	Lost       State = "lost"
)

// Lexicon is the dictionary guesses must belong to. *trie.Tree satisfies it.
type Lexicon interface {
	Contains(word string) bool
}

// Result describes an accepted guess.
type Result struct {
	GuessNumber int                    // 1-based number of this guess
	Colors      []Color                // one per letter
	Correct     bool                   // every letter green
	Pattern     string                 // emoji rendering of Colors
	State       State                  // state after the guess
	Constraints constraint.Constraints // snapshot of the cumulative constraints
}

// Rejections. A rejected guess leaves the game untouched and does not count.
var (
	ErrInvalidGuessLength = errors.New("guess length does not match the secret")
	ErrGuessLimitExceeded = errors.New("out of guesses")
	ErrNotADictionaryWord = errors.New("guess isn't a dictionary word")
	ErrGameOver           = errors.New("game already solved")
)
