// internal/httpserver/routes_game.go
//
// Free-play game and dictionary routes.
//   - POST /game/new   → start a game (random secret, or a fixed dictionary word)
//   - POST /game/guess → score a guess, return colors + cumulative constraints,
//     and candidate solutions when a hint is asked for or cheat mode is on
//   - GET  /words/{word} → dictionary membership
//   - POST /solve      → one-shot constrained enumeration
//
// History rows are written best effort: a database failure is logged and the
// player still gets the answer to the guess.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/ClockWorkElementals/wordle-solver/internal/constraint"
	"github.com/ClockWorkElementals/wordle-solver/internal/game"
	"github.com/ClockWorkElementals/wordle-solver/internal/store"
)

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"`                          // optional fixed answer (testing)
	Length int    `json:"length" validate:"min=0,max=32"` // 0 means the configured default
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
	Answer     string `json:"answer,omitempty"` // cheat mode only
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId" validate:"required"`
	Guess  string `json:"guess" validate:"required"`
	Hint   bool   `json:"hint"`
}
type guessRes struct {
	GuessNumber int            `json:"guessNumber"`
	Colors      []game.Color   `json:"colors"`
	Pattern     string         `json:"pattern"`
	State       game.State     `json:"state"`
	Remaining   int            `json:"remaining"`
	Constraints constraintsRes `json:"constraints"`
	Candidates  []string       `json:"candidates,omitempty"`
	Answer      string         `json:"answer,omitempty"` // revealed on loss or in cheat mode
}

// constraintsRes is the wire form of constraint.Constraints.
type constraintsRes struct {
	Absent     string            `json:"absent"`
	Positional map[string]string `json:"positional"`
	Misplaced  string            `json:"misplaced"`
	Pattern    string            `json:"pattern"`
}

func toConstraintsRes(c constraint.Constraints, n int) constraintsRes {
	pos := make(map[string]string, len(c.Positional))
	for i, r := range c.Positional {
		pos[strconv.Itoa(i)] = string(r)
	}
	return constraintsRes{
		Absent:     c.Absent.String(),
		Positional: pos,
		Misplaced:  string(c.Misplaced),
		Pattern:    c.Pattern(n),
	}
}

// handleNewGame creates a new in-memory game and persists its history row.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	secret := normalize(req.Answer)
	if secret != "" {
		if !s.lex.Contains(secret) {
			writeError(w, http.StatusBadRequest, "not_a_word", secret)
			return
		}
	} else {
		n := req.Length
		if n == 0 {
			n = s.cfg.WordLength
		}
		var err error
		if secret, err = s.lex.RandomWord(n); err != nil {
			writeError(w, http.StatusBadRequest, "no_words", err.Error())
			return
		}
	}

	g := game.New(secret, s.lex)
	if err := s.sessions.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	if err := s.history.Start(r.Context(), g.ID, s.owner(w, r), g.Length()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("insert game row")
	}
	gamesTotal.WithLabelValues("started").Inc()

	res := newGameRes{GameID: g.ID, Length: g.Length(), MaxGuesses: game.MaxGuesses}
	if s.cfg.CheatMode {
		res.Answer = g.Secret()
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleGuess applies a guess under the session lock, then records history.
// A game that ends with this guess is removed from the session store, so
// later guesses against it get not_found.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	var (
		res    game.Result
		length int
		secret string
	)
	err := s.sessions.Update(r.Context(), req.GameID, func(g *game.Game) error {
		var err error
		res, err = g.Guess(normalize(req.Guess))
		length, secret = g.Length(), g.Secret()
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", req.GameID)
		return
	case err != nil:
		status, code := rejection(err)
		guessesTotal.WithLabelValues(code).Inc()
		writeError(w, status, code, err.Error())
		return
	}
	guessesTotal.WithLabelValues("accepted").Inc()

	if err := s.history.RecordGuess(r.Context(), req.GameID, s.owner(w, r), string(res.State)); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("record guess")
	}
	if res.State != game.InProgress {
		gamesTotal.WithLabelValues(string(res.State)).Inc()
		// Finished games live on only as history rows.
		if err := s.sessions.Delete(r.Context(), req.GameID); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("drop finished game")
		}
	}

	out := guessRes{
		GuessNumber: res.GuessNumber,
		Colors:      res.Colors,
		Pattern:     res.Pattern,
		State:       res.State,
		Remaining:   game.MaxGuesses - res.GuessNumber,
		Constraints: toConstraintsRes(res.Constraints, length),
	}
	if req.Hint || s.cfg.CheatMode {
		c := res.Constraints
		out.Candidates = s.lex.Tree().Enumerate(length, c.Absent, c.Positional, c.Misplaced)
		candidatesFound.Observe(float64(len(out.Candidates)))
	}
	if res.State == game.Lost || s.cfg.CheatMode {
		out.Answer = secret
	}
	writeJSON(w, http.StatusOK, out)
}

// handleLookup reports whether a word is in the dictionary.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	word := normalize(chi.URLParam(r, "word"))
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "valid": s.lex.Contains(word)})
}

// solveReq is the body of POST /solve. Positional maps a 0-based index to
// the letter fixed there.
type solveReq struct {
	Length     int               `json:"length" validate:"min=0,max=32"`
	Absent     string            `json:"absent"`
	Positional map[string]string `json:"positional"`
	Misplaced  string            `json:"misplaced"`
}

// handleSolve enumerates dictionary words matching the given constraints.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if req.Length == 0 {
		req.Length = s.cfg.WordLength
	}

	pos := make(map[int]rune, len(req.Positional))
	for k, v := range req.Positional {
		i, err := strconv.Atoi(k)
		v = normalize(v)
		if err != nil || utf8.RuneCountInString(v) != 1 {
			writeError(w, http.StatusBadRequest, "bad_positional", k+"="+v)
			return
		}
		c, _ := utf8.DecodeRuneInString(v)
		pos[i] = c
	}

	found := s.lex.Tree().Enumerate(req.Length,
		constraint.NewSet([]rune(normalize(req.Absent))...), pos, []rune(normalize(req.Misplaced)))
	candidatesFound.Observe(float64(len(found)))
	writeJSON(w, http.StatusOK, map[string]any{"count": len(found), "candidates": found})
}
