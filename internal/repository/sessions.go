package repository

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"fmt"           // Error wrapping
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// session is the value stored for a live refresh token
type session struct {
	UserID uint `json:"user_id"` // Owner of the refresh token
}

// SessionRepository tracks live refresh tokens in Redis by token ID
type SessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a SessionRepository on top of a Redis client
func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// sessionKey builds the Redis key for a refresh token ID
func sessionKey(tokenID string) string {
	return "refresh:" + tokenID
}

// Save records a refresh token until it expires
func (r *SessionRepository) Save(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	b, err := json.Marshal(session{UserID: userID}) // Marshal value to JSON
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, sessionKey(tokenID), b, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Lookup returns the user owning a live refresh token
func (r *SessionRepository) Lookup(ctx context.Context, tokenID string) (uint, bool, error) {
	val, err := r.rdb.Get(ctx, sessionKey(tokenID)).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // Key does not exist
	} else if err != nil {
		return 0, false, fmt.Errorf("failed to load session: %w", err)
	}
	var s session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return 0, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return s.UserID, true, nil
}

// Delete revokes a refresh token
func (r *SessionRepository) Delete(ctx context.Context, tokenID string) error {
	if err := r.rdb.Del(ctx, sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
