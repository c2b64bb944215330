package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/telmart/console_api/internal/models"
)

// FormCache stores active form sessions in Redis. A session is owned by
// exactly one open form; the TTL is refreshed on every mutation so an
// abandoned form eventually disappears on its own.
type FormCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewFormCache creates a new FormCache with the given session TTL.
func NewFormCache(redis *RedisClient, ttl time.Duration) *FormCache {
	return &FormCache{
		redis: redis,
		ttl:   ttl,
	}
}

// key returns the Redis key for a form session.
func (c *FormCache) key(formID string) string {
	return fmt.Sprintf("form:session:%s", formID)
}

// Save stores a form session, stamping UpdatedAt and refreshing the TTL.
func (c *FormCache) Save(ctx context.Context, session *models.FormSession) error {
	session.UpdatedAt = time.Now()

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}

	if err := c.redis.Set(ctx, c.key(session.ID), string(jsonData), c.ttl); err != nil {
		return fmt.Errorf("failed to store form session: %w", err)
	}
	return nil
}

// Get retrieves a form session by ID. Returns a redis nil error when the
// session does not exist or has expired.
func (c *FormCache) Get(ctx context.Context, formID string) (*models.FormSession, error) {
	jsonData, err := c.redis.Get(ctx, c.key(formID))
	if err != nil {
		return nil, err
	}

	var session models.FormSession
	if err := json.Unmarshal([]byte(jsonData), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form session: %w", err)
	}
	return &session, nil
}

// Delete discards a form session (modal close, navigation away, or
// successful submit).
func (c *FormCache) Delete(ctx context.Context, formID string) error {
	return c.redis.Delete(ctx, c.key(formID))
}
