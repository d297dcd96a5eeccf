// internal/constraint/constraint.go
//
// Letter constraints gathered while playing a puzzle.
// Defines:
//   - Set:         a set of letters (greys).
//   - Constraints: absent letters, required letters by position (greens),
//                  and letters that must appear somewhere (yellows).
//
// The game package produces Constraints and the trie package consumes them;
// neither depends on the other, both depend on this package.

package constraint

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a set of letters.
// The zero value (nil) is an empty, read-only set.
type Set map[rune]struct{}

// NewSet returns a set holding every rune of letters.
func NewSet(letters ...rune) Set {
	s := make(Set, len(letters))
	for _, r := range letters {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts r into the set.
func (s Set) Add(r rune) { s[r] = struct{}{} }

// Has reports whether r is in the set. Safe on a nil set.
func (s Set) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set as its sorted letters, e.g. "adet".
func (s Set) String() string { return string(s.Sorted()) }

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// Constraints is the cumulative knowledge about a secret word.
type Constraints struct {
	Absent     Set          // letters known not to appear (greys)
	Positional map[int]rune // zero-based index → required letter (greens)
	Misplaced  []rune       // letters that must appear somewhere (yellows); duplicates allowed
}

// New returns empty, writable constraints.
func New() Constraints {
	return Constraints{
		Absent:     make(Set),
		Positional: make(map[int]rune),
		Misplaced:  []rune{},
	}
}

// Clone deep-copies c so callers can hand out snapshots.
func (c Constraints) Clone() Constraints {
	pos := make(map[int]rune, len(c.Positional))
	for i, r := range c.Positional {
		pos[i] = r
	}
	return Constraints{
		Absent:     c.Absent.Clone(),
		Positional: pos,
		Misplaced:  append([]rune{}, c.Misplaced...),
	}
}

// Pattern renders the positional letters over a word of length n,
// using '.' for unknown positions: "s.o..".
func (c Constraints) Pattern(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = '.'
		if r, ok := c.Positional[i]; ok {
			b[i] = r
		}
	}
	return string(b)
}

// String is a compact human-readable summary used by logs and the console.
func (c Constraints) String() string {
	idx := make([]int, 0, len(c.Positional))
	for i := range c.Positional {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	greens := make([]string, 0, len(idx))
	for _, i := range idx {
		greens = append(greens, strconv.Itoa(i)+"="+string(c.Positional[i]))
	}
	return "greys=[" + c.Absent.String() + "] greens=[" + strings.Join(greens, ",") +
		"] yellows=[" + string(c.Misplaced) + "]"
}
