package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/bizledger/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "bizledger:reports"
	generationKey = keyPrefix + ":gen"
)

// ReportCache keeps rendered reports in redis as JSON. Every key embeds a
// generation number, so Invalidate only has to bump the generation.
// Stale keys age out through their TTL.
type ReportCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewReportCache creates a report cache whose entries live for ttl.
func NewReportCache(client redis.UniversalClient, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

var _ ports.ReportCache = (*ReportCache)(nil)

// Generation returns the current generation. A missing counter is
// generation 0.
func (c *ReportCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report cache generation: %w", err)
	}
	return gen, nil
}

func reportKey(gen int64, kind, params string) string {
	return keyPrefix + ":" + strconv.FormatInt(gen, 10) + ":" + kind + ":" + params
}

// Get loads the report cached under gen into dest. It reports false on a miss.
func (c *ReportCache) Get(ctx context.Context, gen int64, kind, params string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, reportKey(gen, kind, params)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cached report %s: %w", kind, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached report %s: %w", kind, err)
	}
	return true, nil
}

// Set stores value under gen. Values stored under an old generation are
// never read again.
func (c *ReportCache) Set(ctx context.Context, gen int64, kind, params string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report %s: %w", kind, err)
	}
	if err := c.client.Set(ctx, reportKey(gen, kind, params), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report %s: %w", kind, err)
	}
	return nil
}

// Invalidate makes every previously cached report unreachable.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to bump report cache generation: %w", err)
	}
	return nil
}
