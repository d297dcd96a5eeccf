// internal/config/config.go
//
// Process configuration, read from the environment.
// A .env file in the working directory is loaded first when present
// (development convenience); real environment variables win.
//
// Variables:
//   PORT              HTTP port                       (5175)
//   LOG_LEVEL         zerolog level                   (info)
//   DB_PATH           SQLite file                     (./data/app.db)
//   WORDS_FILE        word list, empty = embedded     ("")
//   WORD_LENGTH       letters per puzzle              (5)
//   CHEAT_MODE        include candidates in replies   (false)
//   DAILY_SALT        daily word selection salt       (local_dev_salt)
//   JWT_SECRET        HS256 signing key               (dev_secret_change_me)
//   JWT_EXPIRES_DAYS  token lifetime                  (14)
//   COOKIE_NAME       auth cookie                     (wordle_token)
//   CLIENT_ORIGIN     CORS origin                     (http://localhost:5173)
//   NODE_ENV          "production" enables secure cookies

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Port           string `validate:"required,numeric"`
	LogLevel       string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	DBPath         string `validate:"required"`
	WordsFile      string
	WordLength     int  `validate:"min=1,max=32"`
	CheatMode      bool
	DailySalt      string `validate:"required"`
	JWTSecret      string `validate:"required"`
	JWTExpiresDays int    `validate:"min=1"`
	CookieName     string `validate:"required"`
	ClientOrigin   string `validate:"required,url"`
	Production     bool
}

// Load reads .env (if any) and the environment, then validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       getEnv("DB_PATH", "./data/app.db"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:   getEnv("COOKIE_NAME", "wordle_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
	}

	var err error
	if cfg.WordLength, err = getInt("WORD_LENGTH", 5); err != nil {
		return Config{}, err
	}
	if cfg.JWTExpiresDays, err = getInt("JWT_EXPIRES_DAYS", 14); err != nil {
		return Config{}, err
	}
	if cfg.CheatMode, err = getBool("CHEAT_MODE", false); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}
