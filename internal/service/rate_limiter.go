package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// rateLimitScript is a Lua script for sliding window rate limiting.
// Returns {allowed, remaining, resetAt}.
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = 0
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    else
        resetAt = now + window
    end
    return {0, 0, resetAt}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

return {1, limit - count - 1, now + window}
`)

// Decision is the outcome of a rate limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is how long the caller should wait before trying again.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if d.Allowed {
		return 0
	}
	wait := d.ResetAt.Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return wait
}

// RateLimiter provides sliding-window rate limiting backed by Redis.
type RateLimiter struct {
	client   redis.Scripter
	failOpen bool
	now      func() time.Time
}

// NewRateLimiter creates a rate limiter. With failOpen set, a Redis failure
// lets the request through; otherwise it is denied.
func NewRateLimiter(client redis.Scripter, failOpen bool) *RateLimiter {
	return &RateLimiter{client: client, failOpen: failOpen, now: time.Now}
}

// CheckLimit records one hit on key and reports whether it fits in the window.
func (rl *RateLimiter) CheckLimit(
	ctx context.Context,
	key string,
	limit int,
	window time.Duration,
) Decision {
	now := rl.now()

	result, err := rateLimitScript.Run(
		ctx,
		rl.client,
		[]string{key},
		now.Unix(),
		int64(window.Seconds()),
		limit,
	).Int64Slice()

	if err == nil && len(result) != 3 {
		log.Warn().Str("key", key).Int("len", len(result)).Msg("unexpected rate limit result")
		return rl.fallback(now, limit, window)
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("key", key).
			Bool("fail_open", rl.failOpen).
			Msg("rate limit check failed")
		return rl.fallback(now, limit, window)
	}

	return Decision{
		Allowed:   result[0] == 1,
		Remaining: int(result[1]),
		ResetAt:   time.Unix(result[2], 0),
	}
}

func (rl *RateLimiter) fallback(now time.Time, limit int, window time.Duration) Decision {
	if rl.failOpen {
		return Decision{Allowed: true, Remaining: limit, ResetAt: now.Add(window)}
	}
	return Decision{Allowed: false, ResetAt: now.Add(window)}
}
