// internal/httpserver/server.go
//
// HTTP server wiring for the wordle-solver backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, JSON, CORS, timeouts, panic recovery).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Dictionary endpoints: GET /words/{word}, POST /solve.
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - The lexicon's trie is shared read-only by all requests; every
//     enumeration works on its own copy.
//   - Guesses against one game are serialized by the session store.

package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ClockWorkElementals/wordle-solver/internal/auth"
	"github.com/ClockWorkElementals/wordle-solver/internal/config"
	"github.com/ClockWorkElementals/wordle-solver/internal/history"
	"github.com/ClockWorkElementals/wordle-solver/internal/store"
	"github.com/ClockWorkElementals/wordle-solver/internal/words"
)

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config   config.Config
	Lexicon  *words.Lexicon
	Sessions store.Store
	DB       *sql.DB
}

// Server bundles router, lexicon, session store and DB-backed stores.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	lex      *words.Lexicon
	sessions store.Store
	db       *sql.DB
	users    *auth.Users
	history  *history.Store
	signer   *auth.Signer
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      d.Config,
		lex:      d.Lexicon,
		sessions: d.Sessions,
		db:       d.DB,
		users:    auth.NewUsers(d.DB),
		history:  history.NewStore(d.DB),
		signer:   auth.NewSigner(d.Config.JWTSecret, time.Duration(d.Config.JWTExpiresDays)*24*time.Hour),
	}

	// --- middleware ---
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "GET /words/{word}", "POST /solve", "POST /game/new", "POST /game/guess", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Handle("/metrics", promhttp.Handler())
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		total, byLen := s.lex.Stats()
		writeJSON(w, http.StatusOK, map[string]any{"total": total, "byLength": byLen, "sessions": s.sessions.Len()})
	})

	// Dictionary
	s.r.Get("/words/{word}", s.handleLookup)
	s.r.Post("/solve", s.handleSolve)

	// Game endpoints: optional auth, guests can play
	s.r.With(s.withOptionalAuth()).Post("/game/new", s.handleNewGame)
	s.r.With(s.withOptionalAuth()).Post("/game/guess", s.handleGuess)

	// Daily Challenge: optional auth, result persisted on win
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Auth + profile/stats
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ----------------------------- middleware ----------------------------------

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
