// internal/words/words.go
//
// Loads the dictionary into a prefix tree and draws secrets from it.
//
// Responsibilities:
//   - Read word lists from a file or from the embedded default.
//   - Normalize tokens (trim, lowercase) and keep only a–z words.
//   - Insert every word into a trie.Tree shared read-only afterwards.
//   - Supply RandomWord for new puzzles and Stats for diagnostics.
//
// Input format:
//   - Whitespace separated tokens; one word per line is the usual layout.
//   - Lines starting with '#' are comments.
//
// Environment (read by internal/config, passed in here):
//   WORDS_FILE=/path/to/words.txt   (empty → embedded assets/words.txt)

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/ClockWorkElementals/wordle-solver/assets"
	"github.com/ClockWorkElementals/wordle-solver/internal/trie"
)

// ErrNoWords is returned when a lexicon ends up empty or has no word of a
// requested length.
var ErrNoWords = errors.New("words: no words")

// Lexicon is a loaded dictionary. It is safe for concurrent reads once
// loading has returned.
type Lexicon struct {
	tree     *trie.Tree
	byLength map[int][]string // letters → words of that length, tree order
	skipped  int
}

func newLexicon() *Lexicon {
	return &Lexicon{tree: trie.New(), byLength: make(map[int][]string)}
}

// Load reads tokens from r into a new Lexicon.
func Load(r io.Reader) (*Lexicon, error) {
	lx := newLexicon()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			w := strings.ToLower(tok)
			if !isAlpha(w) {
				lx.skipped++
				continue
			}
			lx.add(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if lx.tree.Len() == 0 {
		return nil, ErrNoWords
	}
	lx.index()
	return lx, nil
}

// FromWords builds a Lexicon from already normalized words.
func FromWords(list ...string) *Lexicon {
	lx := newLexicon()
	for _, w := range list {
		lx.add(w)
	}
	lx.index()
	return lx
}

func (lx *Lexicon) add(w string) {
	if lx.tree.Contains(w) {
		return
	}
	lx.tree.Insert(w)
	n := utf8.RuneCountInString(w)
	lx.byLength[n] = append(lx.byLength[n], w)
}

// index replaces each per-length list with the tree's own ordering, so
// WordAt agrees with Enumerate. Runs once, after the last add.
func (lx *Lexicon) index() {
	for n := range lx.byLength {
		lx.byLength[n] = lx.tree.Words(n)
	}
}

// LoadFile reads a word list from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lx, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lx, nil
}

// LoadDefault reads path when it is set and the embedded list otherwise.
func LoadDefault(path string) (*Lexicon, error) {
	var (
		lx  *Lexicon
		err error
		src = path
	)
	if path != "" {
		lx, err = LoadFile(path)
	} else {
		src = "embedded:" + assets.DefaultLexicon
		var rc io.ReadCloser
		if rc, err = assets.Lexicon(); err == nil {
			lx, err = Load(rc)
			rc.Close()
		}
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", src).Int("words", lx.tree.Len()).Int("skipped", lx.skipped).Msg("lexicon loaded")
	return lx, nil
}

// Tree exposes the underlying prefix tree (read-only use).
func (lx *Lexicon) Tree() *trie.Tree { return lx.tree }

// Contains reports whether w is a dictionary word.
func (lx *Lexicon) Contains(w string) bool { return lx.tree.Contains(w) }

// Count returns the number of words with exactly length letters.
func (lx *Lexicon) Count(length int) int { return len(lx.byLength[length]) }

// RandomWord returns a cryptographically random word of the given length.
func (lx *Lexicon) RandomWord(length int) (string, error) {
	n := len(lx.byLength[length])
	if n == 0 {
		return "", fmt.Errorf("%w of length %d", ErrNoWords, length)
	}
	k, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return "", err
	}
	return lx.WordAt(length, int(k.Int64()))
}

// WordAt returns the i-th word of the given length in dictionary order,
// wrapping i modulo the number of such words. Used for deterministic
// (daily) secrets.
func (lx *Lexicon) WordAt(length, i int) (string, error) {
	list := lx.byLength[length]
	if len(list) == 0 {
		return "", fmt.Errorf("%w of length %d", ErrNoWords, length)
	}
	i %= len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i], nil
}

// Stats returns the total number of words and the per-length counts.
func (lx *Lexicon) Stats() (total int, byLength map[int]int) {
	byLength = make(map[int]int, len(lx.byLength))
	for k, v := range lx.byLength {
		byLength[k] = len(v)
	}
	return lx.tree.Len(), byLength
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
