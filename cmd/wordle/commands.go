package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ClockWorkElementals/wordle-solver/internal/config"
	"github.com/ClockWorkElementals/wordle-solver/internal/constraint"
	"github.com/ClockWorkElementals/wordle-solver/internal/game"
	"github.com/ClockWorkElementals/wordle-solver/internal/words"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg       config.Config
	wordsFile string
	lex       *words.Lexicon
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Play Wordle and query its dictionary from the console",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			path := a.wordsFile
			if path == "" {
				path = cfg.WordsFile
			}
			a.lex, err = words.LoadDefault(path)
			return err
		},
	}
	root.PersistentFlags().StringVar(&a.wordsFile, "words", "", "dictionary file (default: WORDS_FILE or the embedded list)")

	root.AddCommand(a.playCmd(), a.checkCmd(), a.solveCmd())
	return root
}

// =============================================================================
// PLAY
// =============================================================================

func (a *app) playCmd() *cobra.Command {
	var (
		length int
		cheat  bool
		answer string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game on the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length == 0 {
				length = a.cfg.WordLength
			}
			secret := strings.ToLower(answer)
			if secret == "" {
				var err error
				if secret, err = a.lex.RandomWord(length); err != nil {
					return err
				}
			} else if !a.lex.Contains(secret) {
				return fmt.Errorf("%q is not in the dictionary", secret)
			}
			return a.play(cmd.InOrStdin(), cmd.OutOrStdout(), game.New(secret, a.lex), cheat || a.cfg.CheatMode)
		},
	}
	cmd.Flags().IntVar(&length, "length", 0, "letters in the secret word (default: WORD_LENGTH)")
	cmd.Flags().BoolVar(&cheat, "cheat", false, "show the secret and candidate solutions")
	cmd.Flags().StringVar(&answer, "answer", "", "fixed secret word")
	_ = cmd.Flags().MarkHidden("answer")
	return cmd
}

// play runs the read-guess-print loop until the game ends or input runs out.
func (a *app) play(in io.Reader, out io.Writer, g *game.Game, cheat bool) error {
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d guesses.\n", g.Length(), game.MaxGuesses)
	if cheat {
		fmt.Fprintf(out, "Secret: %s\n", g.Secret())
	}

	sc := bufio.NewScanner(in)
	for !g.Finished() {
		fmt.Fprintf(out, "Guess %d/%d: ", g.GuessCount()+1, game.MaxGuesses)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" {
			continue
		}

		res, err := g.Guess(word)
		switch {
		case errors.Is(err, game.ErrInvalidGuessLength):
			fmt.Fprintf(out, "Guess must be %d letters.\n", g.Length())
			continue
		case errors.Is(err, game.ErrNotADictionaryWord):
			fmt.Fprintf(out, "%q isn't a dictionary word.\n", word)
			continue
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "%s  %s\n", res.Pattern, word)
		if cheat {
			c := res.Constraints
			fmt.Fprintf(out, "Constraints: %s\n", c)
			found := a.lex.Tree().Enumerate(g.Length(), c.Absent, c.Positional, c.Misplaced)
			fmt.Fprintf(out, "Possible solutions (%d): %s\n", len(found), strings.Join(found, ", "))
		}
	}

	if g.State() == game.Won {
		fmt.Fprintf(out, "Solved in %d guesses.\n", g.GuessCount())
	} else {
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", g.Secret())
	}
	return nil
}

// =============================================================================
// CHECK
// =============================================================================

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD...",
		Short: "Report whether each word is in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, w := range args {
				w = strings.ToLower(strings.TrimSpace(w))
				if a.lex.Contains(w) {
					fmt.Fprintf(out, "%s\tyes\n", w)
				} else {
					fmt.Fprintf(out, "%s\tno\n", w)
				}
			}
			return nil
		},
	}
}

// =============================================================================
// SOLVE
// =============================================================================

func (a *app) solveCmd() *cobra.Command {
	var (
		length int
		absent string
		greens []string
		yellow string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List dictionary words matching known letters",
		Example: `  wordle solve --absent t --green 0=s --yellow no
  wordle solve --length 6 --green 5=e`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length == 0 {
				length = a.cfg.WordLength
			}
			pos, err := parseGreens(greens)
			if err != nil {
				return err
			}
			found := a.lex.Tree().Enumerate(length,
				constraint.NewSet([]rune(strings.ToLower(absent))...), pos, []rune(strings.ToLower(yellow)))
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no candidates")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(found, ","))
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 0, "word length (default: WORD_LENGTH)")
	cmd.Flags().StringVar(&absent, "absent", "", "letters not in the word")
	cmd.Flags().StringArrayVar(&greens, "green", nil, "known letter at a 0-based index, as I=C (repeatable)")
	cmd.Flags().StringVar(&yellow, "yellow", "", "letters somewhere in the word")
	return cmd
}

// parseGreens turns "I=C" pairs into a positional map.
func parseGreens(pairs []string) (map[int]rune, error) {
	pos := make(map[int]rune, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		i, err := strconv.Atoi(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))
		if !ok || err != nil || i < 0 || utf8.RuneCountInString(v) != 1 {
			return nil, fmt.Errorf("bad --green %q: want INDEX=LETTER", p)
		}
		c, _ := utf8.DecodeRuneInString(v)
		pos[i] = c
	}
	return pos, nil
}
