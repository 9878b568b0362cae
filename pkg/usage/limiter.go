package usage

import (
	"context"
	"fmt"
	"time"

	"ai-onboarding-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Limiter enforces a per-user daily question quota backed by Redis. Redis
// being unavailable does not block users: counting errors fail open and the
// request is allowed.
type Limiter struct {
	rdb   *redis.Client
	log   logger.ILogger
	limit int
}

// NewLimiter creates a limiter allowing limit questions per user per day.
// A limit of zero disables the quota entirely.
func NewLimiter(rdb *redis.Client, log logger.ILogger, limit int) *Limiter {
	return &Limiter{rdb: rdb, log: log, limit: limit}
}

// Allow increments the user's daily counter and reports whether the request
// is within quota. The counter key rolls over at UTC midnight.
func (l *Limiter) Allow(ctx context.Context, userID string) (bool, error) {
	if l.limit <= 0 || l.rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("usage:ask:%s:%s", userID, time.Now().UTC().Format("2006-01-02"))

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn("USAGE", "quota check failed, allowing request", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return true, nil
	}

	if count == 1 {
		// First question of the day, start the rollover clock.
		if err := l.rdb.Expire(ctx, key, 24*time.Hour).Err(); err != nil {
			l.log.Warn("USAGE", "failed to set quota key expiry", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
	}

	return count <= int64(l.limit), nil
}

// Remaining reports how many questions the user has left today.
func (l *Limiter) Remaining(ctx context.Context, userID string) (int, error) {
	if l.limit <= 0 || l.rdb == nil {
		return -1, nil
	}

	key := fmt.Sprintf("usage:ask:%s:%s", userID, time.Now().UTC().Format("2006-01-02"))

	count, err := l.rdb.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("read quota counter: %w", err)
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
