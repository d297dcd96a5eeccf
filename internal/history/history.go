// internal/history/history.go
//
// Game history persisted in SQLite.
// Each game row is owned either by a user id or, for guests, by an anonymous
// cookie id; ClaimAnonymous moves guest rows onto an account after login.
// Secrets are never written to the database.
//
// All writes are best effort from the game's point of view: the HTTP layer
// logs failures and still answers the guess.

package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/ClockWorkElementals/wordle-solver/internal/auth"
)

// Owner identifies who played a game. Exactly one field is set.
type Owner struct {
	UserID      string
	AnonymousID string
}

func (o Owner) clause() (string, any) {
	if o.UserID != "" {
		return `user_id=?`, o.UserID
	}
	return `anonymous_id=?`, o.AnonymousID
}

// Row is a game as listed by Recent.
type Row struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Guesses    int    `json:"guesses"`
	WordLength int    `json:"wordLength"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Store is the games table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open, migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Start inserts the row for a new game.
func (s *Store) Start(ctx context.Context, gameID string, o Owner, wordLength int) error {
	var user, anon any
	if o.UserID != "" {
		user = o.UserID
	} else {
		anon = o.AnonymousID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, user_id, anonymous_id, word_length, status, guesses, started_at)
		VALUES (?,?,?,?, 'playing', 0, ?)`,
		gameID, user, anon, wordLength, s.now().Format(time.RFC3339))
	return err
}

// RecordGuess counts one accepted guess. When status is "won" or "lost" the
// game is closed and, for account owners, the user's stats are updated in
// the same transaction.
func (s *Store) RecordGuess(ctx context.Context, gameID string, o Owner, status string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	clause, arg := o.clause()
	if _, err := tx.ExecContext(ctx,
		`UPDATE games SET guesses = guesses + 1, status = ? WHERE id=? AND `+clause,
		status, gameID, arg); err != nil {
		return err
	}
	if status == "won" || status == "lost" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE games SET finished_at=? WHERE id=? AND `+clause,
			s.now().Format(time.RFC3339), gameID, arg); err != nil {
			return err
		}
		if o.UserID != "" {
			if err := auth.BumpStats(ctx, tx, o.UserID, status == "won"); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Recent lists a user's latest games, newest first.
func (s *Store) Recent(ctx context.Context, userID string, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, guesses, word_length, started_at, COALESCE(finished_at,'')
		FROM games WHERE user_id=? ORDER BY started_at DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Status, &r.Guesses, &r.WordLength, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonymous transfers a guest's games to a user account.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) (int64, error) {
	if anonID == "" || userID == "" {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
