package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/babycare/store-api/internal/core/domain"
)

const (
	catalogKey = "catalog:products"
	catalogTTL = 5 * time.Minute
)

// CatalogCache caches the full product listing as a JSON blob. The cache is
// invalidated on every product creation, so a stale entry lives at most
// catalogTTL after a write that somehow skipped invalidation.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client, ttl: catalogTTL}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Document, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return docs, nil
}

// Set stores the listing with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, products []domain.Document) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
