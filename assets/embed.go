// assets/embed.go
//
// Embedded default lexicon, used when no WORDS_FILE is configured.

package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultLexicon is the name of the embedded word list inside FS.
const DefaultLexicon = "words.txt"

// Lexicon opens the embedded word list. The caller closes it.
func Lexicon() (io.ReadCloser, error) {
	return FS.Open(DefaultLexicon)
}
