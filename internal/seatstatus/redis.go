// Package seatstatus reads and writes the seat-status snapshot kept in
// Redis.  The snapshot is a single hash: field = performance id, value =
// status label.  It is refreshed by the status feed consumer and read once
// per search.
package seatstatus

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/performance-search/internal/search"
)

// DefaultKey is the Redis key of the snapshot hash.
const DefaultKey = "performance_statuses"

// RedisProvider serves snapshots from a Redis hash.
type RedisProvider struct {
	rdb     *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisProvider returns a provider reading key from rdb.  A nil client
// is allowed: every snapshot then fails with search.ErrSeatStatusUnavailable.
func NewRedisProvider(rdb *redis.Client, key string) *RedisProvider {
	if key == "" {
		key = DefaultKey
	}
	return &RedisProvider{rdb: rdb, key: key, timeout: 2 * time.Second}
}

// Snapshot returns the current statuses.  A missing hash yields an empty
// snapshot, not an error.
func (p *RedisProvider) Snapshot(ctx context.Context) (*search.Snapshot, error) {
	if p.rdb == nil {
		return nil, fmt.Errorf("%w: no redis client", search.ErrSeatStatusUnavailable)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	m, err := p.rdb.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrSeatStatusUnavailable, err)
	}
	return search.NewSnapshot(m), nil
}

// Set records the status of one performance.  An empty status removes the
// entry.
func (p *RedisProvider) Set(ctx context.Context, performanceID, status string) error {
	if p.rdb == nil {
		return search.ErrSeatStatusUnavailable
	}
	if status == "" {
		return p.rdb.HDel(ctx, p.key, performanceID).Err()
	}
	return p.rdb.HSet(ctx, p.key, performanceID, status).Err()
}
