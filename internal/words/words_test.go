package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Normalizes(t *testing.T) {
	src := `# comment line
  Sonic
sound   SORTS
tonic
don't
caf3
sonic
`
	lx, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	total, byLen := lx.Stats()
	assert.Equal(t, 4, total)
	assert.Equal(t, map[int]int{5: 4}, byLen)
	assert.Equal(t, 2, lx.skipped)
	for _, w := range []string{"sonic", "sound", "sorts", "tonic"} {
		assert.True(t, lx.Contains(w), w)
	}
	assert.False(t, lx.Contains("Sonic"))
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader("# nothing\n\n123\n"))
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\nan\n"), 0o644))

	lx, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, lx.Count(5))
	assert.Equal(t, 1, lx.Count(2))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDefault_Embedded(t *testing.T) {
	lx, err := LoadDefault("")
	require.NoError(t, err)
	assert.True(t, lx.Contains("sonic"))
	assert.Greater(t, lx.Count(5), 100)
}

func TestRandomWord(t *testing.T) {
	lx := FromWords("sonic", "sound", "an")
	for i := 0; i < 20; i++ {
		w, err := lx.RandomWord(5)
		require.NoError(t, err)
		assert.Contains(t, []string{"sonic", "sound"}, w)
	}
	_, err := lx.RandomWord(7)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestWordAt(t *testing.T) {
	lx := FromWords("sonic", "sound", "tonic")
	got := []string{}
	for i := 0; i < 4; i++ {
		w, err := lx.WordAt(5, i)
		require.NoError(t, err)
		got = append(got, w)
	}
	assert.Equal(t, []string{"sonic", "sound", "tonic", "sonic"}, got)

	w, err := lx.WordAt(5, -1)
	require.NoError(t, err)
	assert.Equal(t, "tonic", w)
}

func TestFromWords_CountsLettersNotBytes(t *testing.T) {
	lx := FromWords("café", "cat")
	assert.Equal(t, 1, lx.Count(4))
	assert.Equal(t, 0, lx.Count(5))

	w, err := lx.RandomWord(4)
	require.NoError(t, err)
	assert.Equal(t, "café", w)

	_, byLen := lx.Stats()
	assert.Equal(t, map[int]int{3: 1, 4: 1}, byLen)
}

func TestWordAt_FollowsTreeOrder(t *testing.T) {
	lx := FromWords("tonic", "sonic", "an", "sound")

	// Lists are built once at load time, in the order Enumerate yields.
	assert.Equal(t, []string{"tonic", "sonic", "sound"}, lx.byLength[5])
	assert.Equal(t, lx.Tree().Words(5), lx.byLength[5])

	for i, want := range lx.Tree().Words(5) {
		got, err := lx.WordAt(5, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
