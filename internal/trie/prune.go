// internal/trie/prune.go
//
// Pruning passes run by Tree.Enumerate on its working copy.
// Each pass walks the tree depth-first, decides bottom-up whether a subtree
// can still hold an answer, detaches the subtrees that cannot and marks them
// dead. Later passes therefore only see what earlier passes kept.

package trie

import "github.com/ClockWorkElementals/wordle-solver/internal/constraint"

// pruner carries the constraints of one Enumerate call.
type pruner struct {
	length     int
	absent     constraint.Set
	positional map[int]rune
	deepest    int // largest constrained index, -1 when positional is empty
	misplaced  []rune
}

// reachesLength keeps only paths that are at least p.length letters deep and
// cuts everything below depth p.length. The root is depth 0.
func (p *pruner) reachesLength(n *node, depth int) bool {
	if depth == p.length {
		n.children = nil
		return true
	}
	if len(n.children) == 0 {
		n.alive = false
		return false
	}
	ok := n.keep(func(c *node) bool { return p.reachesLength(c, depth+1) })
	if !ok {
		n.alive = false
	}
	return ok
}

// reachesWord keeps only paths ending in a stored word at depth p.length.
func (p *pruner) reachesWord(n *node, depth int) bool {
	if depth == p.length {
		if !n.terminal {
			n.alive = false
		}
		return n.terminal
	}
	ok := n.keep(func(c *node) bool { return p.reachesWord(c, depth+1) })
	if !ok {
		n.alive = false
	}
	return ok
}

// avoidsAbsent drops every subtree whose letter is a grey. A branch whose
// children were all dropped goes with them.
func (p *pruner) avoidsAbsent(n *node, depth int) bool {
	if depth > 0 && p.absent.Has(n.label) {
		n.alive = false
		return false
	}
	if depth == p.length {
		return true
	}
	ok := n.keep(func(c *node) bool { return p.avoidsAbsent(c, depth+1) })
	if !ok {
		n.alive = false
	}
	return ok
}

// matchesPositional drops every node whose letter differs from the green
// required at its index. depth is the zero-based letter index, -1 at the root.
// Once no constrained index lies below depth the subtree is kept as is.
func (p *pruner) matchesPositional(n *node, depth int) bool {
	if want, ok := p.positional[depth]; ok && want != n.label {
		n.alive = false
		return false
	}
	if depth >= p.deepest {
		return true
	}
	ok := n.keep(func(c *node) bool { return p.matchesPositional(c, depth+1) })
	if !ok {
		n.alive = false
	}
	return ok
}

// collect appends every live word of p.length letters that holds all the
// misplaced letters. path is the prefix spelled so far and is reused as a
// scratch buffer.
func (p *pruner) collect(n *node, path []rune, out *[]string) {
	for _, c := range n.children {
		if !c.alive {
			continue
		}
		path = append(path, c.label)
		if len(path) == p.length {
			if c.terminal && p.holdsMisplaced(path) {
				*out = append(*out, string(path))
			}
		} else {
			p.collect(c, path, out)
		}
		path = path[:len(path)-1]
	}
}

// holdsMisplaced is a presence check: a letter listed twice needs to appear
// only once.
func (p *pruner) holdsMisplaced(word []rune) bool {
	for _, m := range p.misplaced {
		found := false
		for _, r := range word {
			if r == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
