package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/apiweb/internal/core/port"
)

const rateLimitPrefix = "ratelimit"

// RateLimiter is a fixed window counter. The window starts with the first request
// under a key and the counter expires with it.
type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) port.RateLimiterPort {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", rateLimitPrefix, key)

	var count *goredis.IntCmd
	_, err := r.client.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		count = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return count.Val() <= int64(limit), nil
}
