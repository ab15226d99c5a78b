// Package session implements the Redis-backed session store. A session is an
// explicit per-request value carrying the authenticated user's id, email, and
// role; it is created at login, resolved from the session_id cookie on every
// request, and destroyed at logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:%s"

// Session is the server-side state attached to a logged-in browser.
type Session struct {
	Token  string          `json:"-"`
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// Store creates, resolves, and destroys sessions in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a session store writing to the given Redis client with the given TTL.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf(keyPrefix, token)
}

// Create stores a new session for the user and returns it with a fresh token.
func (s *Store) Create(ctx context.Context, user *models.User) (*Session, error) {
	if s.rdb == nil {
		return nil, errors.New("session store unavailable")
	}

	sess := &Session{
		Token:  uuid.New().String(),
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.Token), payload, s.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get resolves a session token. Returns ErrNotFound for unknown or expired tokens.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if s.rdb == nil || token == "" {
		return nil, ErrNotFound
	}

	payload, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}
	sess.Token = token
	return &sess, nil
}

// Destroy removes the session for the given token. Destroying a missing
// session is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if s.rdb == nil || token == "" {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
