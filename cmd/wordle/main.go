// cmd/wordle/main.go
//
// Console front end for the dictionary and game engine.
//   - wordle play   → interactive game on stdin/stdout (cheat mode prints the
//     secret, constraints and candidate solutions after each guess)
//   - wordle check  → dictionary membership for each argument
//   - wordle solve  → one-shot constrained enumeration
//
// Configuration comes from the same .env / environment as the server; flags
// override it.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
