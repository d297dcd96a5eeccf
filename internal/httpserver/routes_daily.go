// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today’s daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each player can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for the current day only and persisted to DB
// on win; /daily/new drops the previous days' sessions.
// The secret is picked deterministically from the lexicon by date + salt.

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/ClockWorkElementals/wordle-solver/internal/daily"
	"github.com/ClockWorkElementals/wordle-solver/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	now      func() time.Time
	sessions map[string]*dailySession // active sessions keyed by playerID|date
	pruned   string                   // date of the last prune
	mu       sync.Mutex               // guards sessions, pruned and the games they hold
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	Game      *game.Game
	PlayerID  string
	Date      string
	WordIndex int
	Start     time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     s.cfg.DailySalt,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// puzzle returns today's challenge at the configured word length.
func (d *dailyServer) puzzle() (daily.Puzzle, error) {
	return daily.Today(d.now(), d.salt, d.srv.cfg.WordLength, d.srv.lex)
}

// prune drops sessions from days other than today and reports how many
// went. Callers hold d.mu.
func (d *dailyServer) prune(today string) int {
	n := 0
	for k, sess := range d.sessions {
		if sess.Date != today {
			delete(d.sessions, k)
			n++
		}
	}
	return n
}

// playerID returns the authenticated user ID if logged in, otherwise the
// anonymous cookie ID.
func (d *dailyServer) playerID(w http.ResponseWriter, r *http.Request) string {
	if me := currentUser(r); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID     string `json:"gameId"`
	Date       string `json:"date"`
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
	Played     bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
//   - If the player already has a DB row for today → Played=true.
//   - Otherwise create/reuse an in-memory session and return its GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.playerID(w, r)
	p, err := d.puzzle()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_words", err.Error())
		return
	}
	date := p.Date
	res := dailyNewRes{Date: date, Length: len([]rune(p.Secret)), MaxGuesses: game.MaxGuesses}

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("daily already played")
	} else if played {
		res.Played = true
		writeJSON(w, http.StatusOK, res)
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	if d.pruned != date {
		d.prune(date)
		d.pruned = date
	}
	sess, ok := d.sessions[key]
	if !ok {
		sess = &dailySession{
			Game:      game.New(p.Secret, d.srv.lex),
			PlayerID:  uid,
			Date:      date,
			WordIndex: p.Index,
			Start:     d.now(),
		}
		d.sessions[key] = sess
	}
	res.GameID = sess.Game.ID
	res.Played = sess.Game.Finished()
	d.mu.Unlock()

	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId" validate:"required"`
	Word   string `json:"word" validate:"required"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Colors  []game.Color `json:"colors"`
	Pattern string       `json:"pattern"`
	State   game.State   `json:"state"`
	Guesses int          `json:"guesses"`
}

// handleGuess validates and applies a guess for today's daily session and
// persists the result when it solves the puzzle.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.playerID(w, r)

	var p dailyGuessReq
	if err := decode(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	date := daily.DateKey(d.now())
	key := uid + "|" + date

	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok || sess.Game.ID != p.GameID {
		d.mu.Unlock()
		writeError(w, http.StatusConflict, "no_session", "")
		return
	}
	res, err := sess.Game.Guess(normalize(p.Word))
	d.mu.Unlock()

	if err != nil {
		status, code := rejection(err)
		guessesTotal.WithLabelValues(code).Inc()
		writeError(w, status, code, err.Error())
		return
	}
	guessesTotal.WithLabelValues("accepted").Inc()

	if res.State == game.Won {
		elapsed := int(d.now().Sub(sess.Start).Milliseconds())
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, WordIndex: sess.WordIndex, Guesses: res.GuessNumber, ElapsedMs: elapsed,
		}); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("insert daily result")
		}
	}
	if res.State != game.InProgress {
		gamesTotal.WithLabelValues("daily_" + string(res.State)).Inc()
	}

	writeJSON(w, http.StatusOK, dailyGuessRes{
		Colors: res.Colors, Pattern: res.Pattern, State: res.State, Guesses: res.GuessNumber,
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
