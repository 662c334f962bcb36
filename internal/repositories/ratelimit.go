package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
)

// RateLimitRepository counts requests per client over a fixed window
// using Redis. The window starts on the first hit and the counter
// expires with it.
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Incr increments the counter for the client and returns the hit count
// within the current window.
func (r *RateLimitRepository) Incr(ctx context.Context, clientIP string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("rate_limit:%s", clientIP)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("rate limit incr failed", "key", key, "error", err)
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			logger.Log.Errorw("rate limit expire failed", "key", key, "error", err)
			return 0, err
		}
	}

	return count, nil
}
