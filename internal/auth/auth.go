// internal/auth/auth.go
//
// Accounts for players who want their games and daily results kept.
// Responsibilities:
//   - Username/password validation and bcrypt hashing.
//   - HS256 JWT issue/verify (claims: id, username, exp, iat).
//   - User rows in SQLite: create, lookup by id/username, stat updates.
//
// Guests never need an account; the HTTP layer falls back to an anonymous
// cookie id.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrInvalidToken  = errors.New("invalid token")
	ErrBadLogin      = errors.New("invalid username or password")
)

// User matches the users table shape.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	GamesPlayed  int       `json:"gamesPlayed"`
	Wins         int       `json:"wins"`
	Streak       int       `json:"streak"`
}

// NormalizeUsername trims whitespace.
func NormalizeUsername(u string) string { return strings.TrimSpace(u) }

// ValidateSignup enforces basic username/password rules.
func ValidateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3–24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 72 {
		return errors.New("password must be 8–72 chars")
	}
	return nil
}

// HashPassword returns the bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword is a bcrypt verifier.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// ------------------------------ tokens -------------------------------------

// Claims identifies the user a token was issued to.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Signer issues and verifies tokens with one shared secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a Signer whose tokens live for ttl.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign creates a token for the user and returns it with its expiry.
func (s *Signer) Sign(id, username string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// Parse verifies a token and returns its claims.
func (s *Signer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ------------------------------- users -------------------------------------

// Users is the users table.
type Users struct{ db *sql.DB }

// NewUsers wraps an open, migrated database.
func NewUsers(db *sql.DB) *Users { return &Users{db: db} }

// Create validates input, checks uniqueness, hashes the password and inserts a new user.
func (u *Users) Create(ctx context.Context, username, pw string) (*User, error) {
	username = NormalizeUsername(username)
	if err := ValidateSignup(username, pw); err != nil {
		return nil, err
	}
	if _, err := u.ByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	h, err := HashPassword(pw)
	if err != nil {
		return nil, err
	}
	usr := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: h,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if _, err := u.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		usr.ID, usr.Username, usr.PasswordHash, usr.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate returns the user when username and password match.
func (u *Users) Authenticate(ctx context.Context, username, pw string) (*User, error) {
	usr, err := u.ByUsername(ctx, NormalizeUsername(username))
	if err != nil || !CheckPassword(usr.PasswordHash, pw) {
		return nil, ErrBadLogin
	}
	return usr, nil
}

// ByUsername loads a user (case-insensitive) or returns sql.ErrNoRows.
func (u *Users) ByUsername(ctx context.Context, username string) (*User, error) {
	return scanUser(u.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, games_played, wins, streak
		FROM users WHERE lower(username)=lower(?)`, username))
}

// ByID loads a user or returns sql.ErrNoRows.
func (u *Users) ByID(ctx context.Context, id string) (*User, error) {
	return scanUser(u.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, games_played, wins, streak
		FROM users WHERE id=?`, id))
}

// BumpStats increments games played and updates wins/streak (within tx).
func BumpStats(ctx context.Context, tx *sql.Tx, userID string, won bool) error {
	streak := `0`
	if won {
		streak = `streak + 1`
	}
	wins := 0
	if won {
		wins = 1
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE users SET games_played = games_played + 1, wins = wins + ?, streak = `+streak+` WHERE id=?`,
		wins, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var usr User
	var created string
	if err := row.Scan(&usr.ID, &usr.Username, &usr.PasswordHash, &created,
		&usr.GamesPlayed, &usr.Wins, &usr.Streak); err != nil {
		return nil, err
	}
	usr.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &usr, nil
}
