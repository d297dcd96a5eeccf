// internal/httpserver/respond.go
//
// JSON request/response helpers shared by every route.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ClockWorkElementals/wordle-solver/internal/game"
)

var validate = validator.New()

// errorRes is the body of every non-2xx reply.
type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}

// decode reads a JSON body into v and validates it. An empty body decodes
// to the zero value.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("bad json: %w", err)
	}
	return validate.Struct(v)
}

// rejection maps a refused guess to a status and error code.
func rejection(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrInvalidGuessLength):
		return http.StatusBadRequest, "invalid_length"
	case errors.Is(err, game.ErrGuessLimitExceeded):
		return http.StatusBadRequest, "guess_limit"
	case errors.Is(err, game.ErrNotADictionaryWord):
		return http.StatusBadRequest, "not_a_word"
	case errors.Is(err, game.ErrGameOver):
		return http.StatusBadRequest, "game_over"
	}
	return http.StatusInternalServerError, "internal"
}

// normalize lowercases and trims user input; the core packages expect
// normalized words.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
