// main.go
//
// Entry point of the wordle-solver HTTP server.
// Loads configuration (.env + environment), the dictionary, and the SQLite
// database, then serves until SIGINT/SIGTERM.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ClockWorkElementals/wordle-solver/internal/config"
	"github.com/ClockWorkElementals/wordle-solver/internal/db"
	"github.com/ClockWorkElementals/wordle-solver/internal/httpserver"
	"github.com/ClockWorkElementals/wordle-solver/internal/store"
	"github.com/ClockWorkElementals/wordle-solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	lex, err := words.LoadDefault(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	conn, err := db.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer conn.Close()

	srv := httpserver.New(httpserver.Deps{
		Config:   cfg,
		Lexicon:  lex,
		Sessions: store.NewMemoryStore(),
		DB:       conn,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Bool("cheat", cfg.CheatMode).Msg("starting wordle-solver")
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		stop()
		conn.Close()
		os.Exit(1)
	}
}
