package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/telmart/console_api/pkg/catalog"
)

// referenceTTL bounds how long warmed reference data may serve requests,
// even if the sync worker stalls.
const referenceTTL = 24 * time.Hour

// ReferenceCache holds warmed SKU family reference data so the family
// dropdown answers without a backend round trip. The sync worker
// refreshes it periodically; readers fall back to the backend on miss.
type ReferenceCache struct {
	redis *RedisClient
}

// NewReferenceCache creates a new ReferenceCache.
func NewReferenceCache(redis *RedisClient) *ReferenceCache {
	return &ReferenceCache{redis: redis}
}

func (c *ReferenceCache) key() string {
	return "reference:sku-families"
}

// SetSkuFamilies replaces the warmed SKU family list.
func (c *ReferenceCache) SetSkuFamilies(ctx context.Context, families []catalog.SkuFamily) error {
	jsonData, err := json.Marshal(families)
	if err != nil {
		return fmt.Errorf("failed to marshal sku families: %w", err)
	}
	return c.redis.Set(ctx, c.key(), string(jsonData), referenceTTL)
}

// GetSkuFamilies returns the warmed SKU family list, or a redis nil error
// when the cache is cold.
func (c *ReferenceCache) GetSkuFamilies(ctx context.Context) ([]catalog.SkuFamily, error) {
	jsonData, err := c.redis.Get(ctx, c.key())
	if err != nil {
		return nil, err
	}

	var families []catalog.SkuFamily
	if err := json.Unmarshal([]byte(jsonData), &families); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sku families: %w", err)
	}
	return families, nil
}
