package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// SessionData is the Redis-resident part of a console login session: the
// backend access token and the identity it belongs to. The durable part
// (refresh hash) lives in Postgres.
type SessionData struct {
	SessionID    string    `json:"sessionId"`
	SellerID     string    `json:"sellerId"`
	Email        string    `json:"email"`
	BackendToken string    `json:"backendToken"`
	CachedAt     time.Time `json:"cachedAt"`
}

// SessionCache provides login session caching operations.
type SessionCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewSessionCache creates a new SessionCache. The TTL matches the refresh
// window: once it lapses, the seller must log in again.
func NewSessionCache(redis *RedisClient, ttl time.Duration) *SessionCache {
	return &SessionCache{
		redis: redis,
		ttl:   ttl,
	}
}

// key returns the Redis key for a login session.
func (c *SessionCache) key(sessionID string) string {
	return fmt.Sprintf("auth:session:%s", sessionID)
}

// Set stores session data.
func (c *SessionCache) Set(ctx context.Context, data *SessionData) error {
	data.CachedAt = time.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(data.SessionID), string(jsonData), c.ttl); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// Get retrieves session data by session ID.
func (c *SessionCache) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	jsonData, err := c.redis.Get(ctx, c.key(sessionID))
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &data, nil
}

// Delete removes a session (logout or revocation).
func (c *SessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.redis.Delete(ctx, c.key(sessionID))
}
