package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pdam/billing-console/internal/core/ports"
)

const scanBatch = 100

// ReferenceCache implements ports.ReferenceCache on redis.
// Key format: reference:<kind>:<tenant>
type ReferenceCache struct {
	client redis.UniversalClient
}

var _ ports.ReferenceCache = (*ReferenceCache)(nil)

// NewReferenceCache creates a ReferenceCache wrapping the given Redis client.
func NewReferenceCache(client redis.UniversalClient) *ReferenceCache {
	return &ReferenceCache{client: client}
}

func (c *ReferenceCache) Get(ctx context.Context, kind ports.ReferenceKind, tenant string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.key(kind, tenant)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reference get: %w", err)
	}
	return b, true, nil
}

func (c *ReferenceCache) Set(ctx context.Context, kind ports.ReferenceKind, tenant string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, c.key(kind, tenant), payload, ttl).Err(); err != nil {
		return fmt.Errorf("reference set: %w", err)
	}
	return nil
}

// Invalidate drops the entries of every tenant for kind.
func (c *ReferenceCache) Invalidate(ctx context.Context, kind ports.ReferenceKind) error {
	pattern := fmt.Sprintf("reference:%s:*", kind)
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("reference scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("reference invalidate: %w", err)
	}
	return nil
}

func (c *ReferenceCache) key(kind ports.ReferenceKind, tenant string) string {
	return fmt.Sprintf("reference:%s:%s", kind, tenant)
}
