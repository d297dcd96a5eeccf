// internal/trie/trie.go
//
// Prefix tree holding the dictionary.
// Responsibilities:
//   - Insert words (append-only) and answer exact membership queries.
//   - Enumerate every stored word consistent with a set of Wordle constraints
//     (greys, greens, yellows) by pruning a disposable copy of the tree.
//
// Notes:
//   - Children keep insertion order, so enumeration output is reproducible
//     for an identical insertion history. Sort the result if order matters.
//   - The permanent tree is written only by Insert. Enumerate reads it to build
//     its working copy, so any number of Contains/Enumerate calls may run at
//     once as long as no Insert runs alongside them.
//   - No normalization is done here; callers supply lowercase, trimmed words.

package trie

import "github.com/ClockWorkElementals/wordle-solver/internal/constraint"

// sentinel labels the root, which spells the empty prefix.
const sentinel rune = 0

// node is a single letter in the tree.
type node struct {
	label    rune
	children []*node // insertion order; labels are unique
	terminal bool    // path from the root to here is a stored word
	alive    bool    // working copies only: false once a pruning pass rejects the subtree
}

func newNode(label rune) *node { return &node{label: label, alive: true} }

// child returns the child labelled r, or nil.
// Fan-out is bounded by the alphabet, so a linear scan is fine.
func (n *node) child(r rune) *node {
	for _, c := range n.children {
		if c.label == r {
			return c
		}
	}
	return nil
}

// clone deep-copies the subtree rooted at n with every node alive.
func (n *node) clone() *node {
	cp := &node{label: n.label, terminal: n.terminal, alive: true}
	if len(n.children) > 0 {
		cp.children = make([]*node, len(n.children))
		for i, c := range n.children {
			cp.children[i] = c.clone()
		}
	}
	return cp
}

// keep evaluates fn on every child, detaches the ones it rejects and marks
// them dead. The surviving children are moved into a fresh slice rather than
// removed in place. Reports whether any child survived.
func (n *node) keep(fn func(*node) bool) bool {
	kept := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		if fn(c) {
			kept = append(kept, c)
		} else {
			c.alive = false
		}
	}
	n.children = kept
	return len(kept) > 0
}

// Tree is a dictionary stored as a prefix tree.
type Tree struct {
	root  *node
	words int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: newNode(sentinel)}
}

// Insert adds word to the dictionary. Inserting a word twice is a no-op.
func (t *Tree) Insert(word string) {
	n := t.root
	for _, r := range word {
		c := n.child(r)
		if c == nil {
			c = newNode(r)
			n.children = append(n.children, c)
		}
		n = c
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
}

// Contains reports whether word was inserted.
// A proper prefix of a stored word is not contained unless it was inserted
// itself; Contains("") is true only after Insert("").
func (t *Tree) Contains(word string) bool {
	n := t.root
	for _, r := range word {
		if n = n.child(r); n == nil {
			return false
		}
	}
	return n.terminal
}

// Len returns the number of distinct words stored.
func (t *Tree) Len() int { return t.words }

// Words returns every stored word of exactly length letters, in tree order.
func (t *Tree) Words(length int) []string {
	return t.Enumerate(length, nil, nil, nil)
}

// Enumerate returns every stored word of exactly length letters that
//   - contains no letter of absent,
//   - has positional[i] at index i for every entry of positional,
//   - contains each letter of misplaced at least once.
//
// The search runs on a fresh copy of the tree which is pruned in passes:
// length reachability, word reachability, absent letters, positional letters,
// and finally collection with the misplaced check. The dictionary itself is
// never modified.
//
// A non-positive length, a positional index outside [0, length) or any other
// unsatisfiable combination yields an empty, non-nil slice.
func (t *Tree) Enumerate(length int, absent constraint.Set, positional map[int]rune, misplaced []rune) []string {
	out := []string{}
	if length <= 0 {
		return out
	}
	deepest := -1
	for i := range positional {
		if i < 0 || i >= length {
			return out
		}
		if i > deepest {
			deepest = i
		}
	}

	p := &pruner{
		length:     length,
		absent:     absent,
		positional: positional,
		deepest:    deepest,
		misplaced:  misplaced,
	}
	work := t.root.clone()
	passes := []struct {
		start int
		run   func(*node, int) bool
	}{
		{0, p.reachesLength},
		{0, p.reachesWord},
		{0, p.avoidsAbsent},
		{-1, p.matchesPositional}, // root sits at -1 so its children are index 0
	}
	for _, pass := range passes {
		if !pass.run(work, pass.start) {
			return out
		}
	}
	p.collect(work, make([]rune, 0, length), &out)
	return out
}
