// Package catalogcache caches the aid-type catalog in Redis.
// The catalog is small and read on every case screen, so it is stored as a
// single JSON document under one key.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Key is the Redis key holding the serialized catalog.
const Key = "ksar:catalog:aid_types"

// Cache is a read-through store for the full aid-type list.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New creates a catalog cache with the given TTL.
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type cachedAidType struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Get returns the cached catalog. ok is false on a miss.
func (c *Cache) Get(ctx context.Context) (list []domain.AidType, ok bool, err error) {
	raw, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var cached []cachedAidType
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}

	list = make([]domain.AidType, len(cached))
	for i, a := range cached {
		list[i] = domain.AidType{
			ID:          a.ID,
			Label:       a.Label,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
	}

	return list, true, nil
}

// Set replaces the cached catalog.
func (c *Cache) Set(ctx context.Context, list []domain.AidType) error {
	cached := make([]cachedAidType, len(list))
	for i, a := range list {
		cached[i] = cachedAidType{
			ID:          a.ID,
			Label:       a.Label,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}

	if err := c.client.Set(ctx, Key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}

	return nil
}

// Invalidate drops the cached catalog.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}

// Ping checks connectivity for readiness probes.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
