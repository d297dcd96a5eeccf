// internal/daily/daily.go
//
// The Daily Challenge puzzle: one secret per UTC day, the same for every
// player, picked from the dictionary by HMAC(salt, date).

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Source lists the dictionary words a puzzle can be picked from.
// *words.Lexicon satisfies it.
type Source interface {
	Count(length int) int
	WordAt(length, i int) (string, error)
}

// Puzzle is one day's challenge.
type Puzzle struct {
	Date   string // YYYY-MM-DD, UTC
	Index  int    // position of Secret among words of its length
	Secret string
}

// Today picks the puzzle for the UTC day containing now.
func Today(now time.Time, salt string, length int, src Source) (Puzzle, error) {
	idx := WordIndex(now, salt, src.Count(length))
	secret, err := src.WordAt(length, idx)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Date: DateKey(now), Index: idx, Secret: secret}, nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date into [0, n) via HMAC-SHA256(salt, YYYY-MM-DD).
// It returns 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(v % uint64(n))
}
