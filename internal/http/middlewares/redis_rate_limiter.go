package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window limiter shared by every instance that talks
// to the same Redis. Each window is one counter key that expires with it.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	// window in whole seconds, at least 1.
	window int64
	now    func() time.Time
}

// NewRedisLimiter rounds window up to whole seconds, the resolution of EXPIRE.
func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	seconds := int64((window + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: seconds,
		now:    time.Now,
	}
}

func (l *RedisLimiter) windowKey(key string) string {
	slot := l.now().Unix() / l.window
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	count, err := l.client.Do(ctx, l.client.B().Incr().Key(k).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := l.client.B().Expire().Key(k).Seconds(l.window).Build()
		if err := l.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
