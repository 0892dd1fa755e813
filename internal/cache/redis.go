package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/tamu-thinktank/website-sub000/pkg/model"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// ResultCache stores scheduling results as JSON keyed by applicant ID. It
// implements scheduler.Cache; callers treat every error as best-effort.
type ResultCache struct {
	client *redis.Client
}

func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

func resultKey(applicantID uuid.UUID) string {
	return "autoschedule:result:" + applicantID.String()
}

// GetResult returns the cached result, or (nil, nil) on a miss.
func (c *ResultCache) GetResult(ctx context.Context, applicantID uuid.UUID) (*model.SchedulingResult, error) {
	raw, err := c.client.Get(ctx, resultKey(applicantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var res model.SchedulingResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("unmarshal cached result: %w", err)
	}
	return &res, nil
}

func (c *ResultCache) SetResult(ctx context.Context, applicantID uuid.UUID, res *model.SchedulingResult, ttl time.Duration) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := c.client.Set(ctx, resultKey(applicantID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ResultCache) Invalidate(ctx context.Context, applicantID uuid.UUID) error {
	if err := c.client.Del(ctx, resultKey(applicantID)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}
