// Package repository contains the repository layer for the Wellness Sessions API
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/arvyah/wellnessapi/internal/models"
	"github.com/redis/go-redis/v9"
)

const publishedCacheKey = "wellnessapi:sessions:published"

// publishedCacheTTL bounds staleness if an invalidation is ever missed.
const publishedCacheTTL = 10 * time.Minute

// PublishedCache caches the public listing of published sessions in Redis.
// Redis is an accelerator, not a source of truth: a miss or a Redis failure
// falls through to Postgres.
type PublishedCache struct {
	client *redis.Client
}

// NewPublishedCache creates a new cache over the given Redis client
func NewPublishedCache(client *redis.Client) *PublishedCache {
	return &PublishedCache{client: client}
}

// Get returns the cached listing, or nil on a miss
func (c *PublishedCache) Get(ctx context.Context) ([]models.SessionModel, error) {
	data, err := c.client.Get(ctx, publishedCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sessions []models.SessionModel
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Set stores the listing with a TTL
func (c *PublishedCache) Set(ctx context.Context, sessions []models.SessionModel) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, publishedCacheKey, data, publishedCacheTTL).Err()
}

// Invalidate drops the cached listing. Called after any mutation that can
// change public visibility.
func (c *PublishedCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, publishedCacheKey).Err()
}
