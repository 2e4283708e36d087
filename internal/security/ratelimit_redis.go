package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared RateLimitStore for multi-instance deployments.
// The fixed window lives in redis (INCR + PEXPIRE), so the quota holds
// across processes. Unlike MemoryStore, denied attempts still increment the
// counter; the quota decision itself is unaffected.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "outreach:ratelimit:",
	}
}

func (s *RedisStore) Take(ctx context.Context, key string, quota int, window time.Duration) (Result, error) {
	redisKey := s.prefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit incr: %w", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return Result{}, fmt.Errorf("ratelimit expire: %w", err)
		}
		return Result{Allowed: true, Remaining: quota - 1, ResetIn: window}, nil
	}

	resetIn, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit pttl: %w", err)
	}
	if resetIn < 0 {
		// Key lost its TTL (e.g. expiry raced the INCR); re-arm the window.
		_ = s.client.PExpire(ctx, redisKey, window).Err()
		resetIn = window
	}

	remaining := quota - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   int(count) <= quota,
		Remaining: remaining,
		ResetIn:   resetIn,
	}, nil
}
