package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/platform/obs"
)

const keyPrefix = "assessment:"

// Redis-backed cache for computed feasibility reports. Entries expire after
// the configured TTL so stale infrastructure data ages out on its own.
type RedisAssessmentCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisAssessmentCache(client *redis.Client, ttl time.Duration) *RedisAssessmentCache {
	return &RedisAssessmentCache{Client: client, TTL: ttl}
}

// Fetch a cached report by request fingerprint. A miss returns (nil, nil).
func (c *RedisAssessmentCache) Get(ctx context.Context, key string) (_ *domain.FeasibilityReport, err error) {
	defer obs.Time(ctx, "assessment.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("assessment cache: client is nil")
	}
	if key == "" {
		return nil, errors.New("get assessment cache: key must not be empty")
	}

	data, err := c.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment cache: %w", err)
	}

	var report domain.FeasibilityReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("get assessment cache: decode payload: %w", err)
	}

	return &report, nil
}

// Store a report under a request fingerprint.
func (c *RedisAssessmentCache) Put(ctx context.Context, key string, report *domain.FeasibilityReport) error {
	if c.Client == nil {
		return errors.New("assessment cache: client is nil")
	}
	if key == "" {
		return errors.New("insert assessment cache: key must not be empty")
	}
	if report == nil {
		return errors.New("insert assessment cache: report is nil")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("insert assessment cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, keyPrefix+key, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert assessment cache: %w", err)
	}

	return nil
}
