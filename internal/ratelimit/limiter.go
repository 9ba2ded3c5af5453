// Package ratelimit throttles requests per client key.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// Limiter decides whether the request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Memory is a per-key token bucket held in process.
// Keys idle for a whole window are swept, since their bucket is full again.
type Memory struct {
	mu        sync.Mutex
	limiters  map[string]*memoryEntry
	every     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type memoryEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewMemory allows limit requests per window per key, bursting up to limit.
func NewMemory(limit int, window time.Duration) *Memory {
	if limit < 1 {
		limit = 1
	}
	return &Memory{
		limiters:  make(map[string]*memoryEntry),
		every:     rate.Every(window / time.Duration(limit)),
		burst:     limit,
		window:    window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow takes a token from key's bucket.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if now.Sub(m.lastSweep) >= m.window {
		m.sweep(now)
	}
	e, ok := m.limiters[key]
	if !ok {
		e = &memoryEntry{lim: rate.NewLimiter(m.every, m.burst)}
		m.limiters[key] = e
	}
	e.seen = now
	return e.lim.AllowN(now, 1), nil
}

func (m *Memory) sweep(now time.Time) {
	for k, e := range m.limiters {
		if now.Sub(e.seen) >= m.window {
			delete(m.limiters, k)
		}
	}
	m.lastSweep = now
}

// Len reports how many keys are tracked.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.limiters)
}

// Redis is a fixed-window counter shared by every instance of the site.
type Redis struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedis allows limit requests per window per key.
func NewRedis(client *redis.Client, prefix string, limit int, window time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, limit: int64(limit), window: window}
}

// incrWindow counts a hit and (re)arms the window whenever the key has no TTL,
// so a counter that lost its expiry recovers on the next hit.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// Allow counts the hit against key's current window.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("%s:%s", r.prefix, key)
	n, err := incrWindow.Run(ctx, r.client, []string{k}, r.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	return n <= r.limit, nil
}

var (
	_ Limiter = (*Memory)(nil)
	_ Limiter = (*Redis)(nil)
)
