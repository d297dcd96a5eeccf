package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var empty Set
	assert.False(t, empty.Has('a'), "nil set must be safe to query")

	s := NewSet('t', 'a', 'd')
	s.Add('a')
	assert.Len(t, s, 3)
	assert.True(t, s.Has('t'))
	assert.False(t, s.Has('z'))
	assert.Equal(t, []rune{'a', 'd', 't'}, s.Sorted())
	assert.Equal(t, "adt", s.String())
}

func TestConstraints_CloneIsIndependent(t *testing.T) {
	c := New()
	c.Absent.Add('x')
	c.Positional[0] = 's'
	c.Misplaced = append(c.Misplaced, 'n')

	cp := c.Clone()
	cp.Absent.Add('y')
	cp.Positional[1] = 'o'
	cp.Misplaced[0] = 'q'

	assert.False(t, c.Absent.Has('y'))
	assert.NotContains(t, c.Positional, 1)
	assert.Equal(t, []rune{'n'}, c.Misplaced)
}

func TestConstraints_Render(t *testing.T) {
	c := New()
	c.Absent = NewSet('e', 'a')
	c.Positional[2] = 'o'
	c.Positional[0] = 's'
	c.Misplaced = []rune{'n'}

	assert.Equal(t, "s.o..", c.Pattern(5))
	assert.Equal(t, "greys=[ae] greens=[0=s,2=o] yellows=[n]", c.String())
}
