// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type Limiter interface {
	// Allow counts one hit for key and reports whether it is within limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		// fail open; the limiter must not take login down with Redis
		return true, err
	}

	// a key without TTL opens the window, or is left over from a failed
	// EXPIRE and would otherwise never reset
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, err
		}
	}
	return incr.Val() <= l.limit, nil
}

// --------------------------------------------------
// Memory
// --------------------------------------------------

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is the single-process fallback used when no Redis is
// configured.
type MemoryLimiter struct {
	mu     sync.Mutex
	hits   map[string]*window
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewMemoryLimiter(limit int, w time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		hits:   map[string]*window{},
		limit:  limit,
		window: w,
		now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.hits[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &window{resetAt: now.Add(l.window)}
		l.hits[key] = w
	}
	w.count++
	return w.count <= l.limit, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.hits {
		if !now.Before(w.resetAt) {
			delete(l.hits, k)
		}
	}
}
