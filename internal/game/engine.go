// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions around a fixed secret.
//   - Validate guesses (length, remaining guesses, dictionary membership).
//   - Score guesses with the two-phase duplicate-letter algorithm.
//   - Fold each result into the cumulative constraints handed to the solver.
//   - Track state transitions: playing → won/lost.
//
// Constraint policy:
//   - greens (Positional) and greys (Absent) accumulate across guesses.
//   - yellows (Misplaced) are rebuilt from the latest guess only; earlier
//     yellow letters are dropped.

package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ClockWorkElementals/wordle-solver/internal/constraint"
)

// Game holds the state of a single Wordle session.
type Game struct {
	ID      string   // Unique game identifier.
	Guesses []string // Accepted guesses, in order.

	secret      []rune
	lex         Lexicon
	state       State
	constraints constraint.Constraints
}

// New constructs a session for secret. Guesses are checked against lex.
func New(secret string, lex Lexicon) *Game {
	return &Game{
		ID:          uuid.NewString(),
		Guesses:     []string{},
		secret:      []rune(secret),
		lex:         lex,
		state:       InProgress,
		constraints: constraint.New(),
	}
}

// Secret returns the word being guessed.
func (g *Game) Secret() string { return string(g.secret) }

// Length is the number of letters in the secret.
func (g *Game) Length() int { return len(g.secret) }

// GuessCount is the number of accepted guesses so far.
func (g *Game) GuessCount() int { return len(g.Guesses) }

// Remaining is the number of guesses left.
func (g *Game) Remaining() int { return MaxGuesses - len(g.Guesses) }

// State reports the lifecycle state.
func (g *Game) State() State { return g.state }

// Finished reports whether the game is won or lost.
func (g *Game) Finished() bool { return g.state != InProgress }

// Constraints returns a copy of the cumulative constraints.
func (g *Game) Constraints() constraint.Constraints { return g.constraints.Clone() }

// Guess validates and scores word, updating the session.
//
// Validation happens in this order, and the first failure is returned
// without touching the session:
//   - word must have as many letters as the secret (ErrInvalidGuessLength),
//   - the game must not be over (ErrGuessLimitExceeded after six guesses,
//     ErrGameOver once solved),
//   - word must be in the lexicon (ErrNotADictionaryWord).
func (g *Game) Guess(word string) (Result, error) {
	guess := []rune(word)
	switch {
	case len(guess) != len(g.secret):
		return Result{}, fmt.Errorf("%w: got %d letters, want %d", ErrInvalidGuessLength, len(guess), len(g.secret))
	case len(g.Guesses) >= MaxGuesses:
		return Result{}, ErrGuessLimitExceeded
	case g.state == Won:
		return Result{}, ErrGameOver
	case g.lex == nil || !g.lex.Contains(word):
		return Result{}, fmt.Errorf("%w: %q", ErrNotADictionaryWord, word)
	}

	colors := score(g.secret, guess)
	g.Guesses = append(g.Guesses, word)
	g.fold(guess, colors)

	correct := allGreen(colors)
	switch {
	case correct:
		g.state = Won
	case len(g.Guesses) >= MaxGuesses:
		g.state = Lost
	}

	return Result{
		GuessNumber: len(g.Guesses),
		Colors:      colors,
		Correct:     correct,
		Pattern:     Pattern(colors),
		State:       g.state,
		Constraints: g.constraints.Clone(),
	}, nil
}

// fold merges a scored guess into the cumulative constraints.
func (g *Game) fold(guess []rune, colors []Color) {
	g.constraints.Misplaced = g.constraints.Misplaced[:0:0]
	for i, c := range colors {
		switch c {
		case Green:
			g.constraints.Positional[i] = guess[i]
		case Yellow:
			g.constraints.Misplaced = append(g.constraints.Misplaced, guess[i])
		case Grey:
			// Only letters missing from the whole secret become absent; a grey
			// caused by an exhausted budget says nothing about absence.
			if !containsRune(g.secret, guess[i]) {
				g.constraints.Absent.Add(guess[i])
			}
		default:
			panic(fmt.Sprintf("game: letter %d left unscored", i))
		}
	}
}

// Score compares guess against secret and returns one Color per letter.
// Both words must have the same number of letters.
func Score(secret, guess string) []Color {
	s, g := []rune(secret), []rune(guess)
	if len(s) != len(g) {
		panic(fmt.Sprintf("game: scoring %q against %q: length mismatch", guess, secret))
	}
	return score(s, g)
}

// score implements the two-phase scoring algorithm.
//
// Phase 1:
//   - exact matches are green;
//   - letters found nowhere in the secret are grey;
//   - everything else stays unknown.
//
// Phase 2:
//   - count, per letter, the secret positions that are not green: that is the
//     yellow budget for the letter;
//   - left to right over unknown positions, spend budget to mark yellow, or
//     mark grey once the letter's budget is gone.
//
// A guess repeating a letter more often than the secret holds it gets the
// leftmost extra occurrences yellow and the rest grey.
func score(secret, guess []rune) []Color {
	n := len(secret)
	res := make([]Color, n)

	for i := 0; i < n; i++ {
		switch {
		case guess[i] == secret[i]:
			res[i] = Green
		case !containsRune(secret, guess[i]):
			res[i] = Grey
		default:
			res[i] = unknown
		}
	}

	budget := make(map[rune]int, n)
	for i := 0; i < n; i++ {
		switch res[i] {
		case Yellow:
			panic("game: yellow assigned before budgeting")
		case Green:
		default:
			budget[secret[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] != unknown {
			continue
		}
		if budget[guess[i]] > 0 {
			res[i] = Yellow
			budget[guess[i]]--
		} else {
			res[i] = Grey
		}
	}

	for i, c := range res {
		if c == unknown {
			panic(fmt.Sprintf("game: letter %d left unscored", i))
		}
	}
	return res
}

// containsRune is a linear search; words are short.
func containsRune(word []rune, r rune) bool {
	for _, c := range word {
		if c == r {
			return true
		}
	}
	return false
}

// allGreen returns true if every color is Green.
func allGreen(cs []Color) bool {
	for _, c := range cs {
		if c != Green {
			return false
		}
	}
	return true
}
