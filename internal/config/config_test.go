package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "DB_PATH", "WORDS_FILE", "WORD_LENGTH",
		"CHEAT_MODE", "DAILY_SALT", "JWT_SECRET", "JWT_EXPIRES_DAYS", "COOKIE_NAME",
		"CLIENT_ORIGIN", "NODE_ENV"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.Equal(t, "wordle_token", cfg.CookieName)
	assert.False(t, cfg.CheatMode)
	assert.False(t, cfg.Production)
	assert.Empty(t, cfg.WordsFile)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("CHEAT_MODE", "true")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 6, cfg.WordLength)
	assert.True(t, cfg.CheatMode)
	assert.True(t, cfg.Production)
	assert.Equal(t, "/tmp/words.txt", cfg.WordsFile)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non numeric port", "PORT", "http"},
		{"unparsable length", "WORD_LENGTH", "five"},
		{"length out of range", "WORD_LENGTH", "0"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"bad bool", "CHEAT_MODE", "sometimes"},
		{"bad origin", "CLIENT_ORIGIN", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
