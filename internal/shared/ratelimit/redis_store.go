package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(state[1]) or burst
local last = tonumber(state[2]) or now

local rate = limit / window
tokens = math.min(burst, tokens + ((now - last) * rate))

local allowed = 0
local wait = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	wait = (1 - tokens) / rate
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, window * 2)

return {allowed, math.floor(tokens), math.floor(wait), window}
`)

var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
local allowed = 0
local remaining = 0
local wait = 0
if count < limit then
	redis.call('ZADD', key, now, member)
	allowed = 1
	remaining = limit - count - 1
else
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	if oldest[2] then
		wait = math.max(0, tonumber(oldest[2]) + window - now)
	end
end

redis.call('PEXPIRE', key, window)

return {allowed, remaining, math.floor(wait), window}
`)

var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = redis.call('INCR', key)
if current == 1 then
	redis.call('PEXPIRE', key, window)
end

local ttl = redis.call('PTTL', key)
if current <= limit then
	return {1, limit - current, 0, ttl}
end
return {0, 0, ttl, ttl}
`)

// RedisStore keeps counters in Redis. Scripts are loaded once and invoked by
// SHA afterwards.
type RedisStore struct {
	client redis.Scripter
	closer func() error
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore does not take ownership of client; Close is a no-op unless
// WithOwnedClient is passed.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		prefix: "ratelimit",
		now:    time.Now,
	}
	if client != nil {
		s.client = client
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithOwnedClient makes Close shut the client down.
func WithOwnedClient(client redis.UniversalClient) RedisStoreOption {
	return func(s *RedisStore) {
		s.closer = client.Close
	}
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	fullKey := s.prefix + ":" + key
	now := s.now()
	windowMs := config.Window.Milliseconds()

	var (
		raw []any
		err error
	)
	switch config.Algorithm {
	case AlgorithmSlidingWindow:
		member := fmt.Sprintf("%d", now.UnixNano())
		raw, err = slidingWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, windowMs, now.UnixMilli(), member).Slice()
	case AlgorithmFixedWindow:
		raw, err = fixedWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, windowMs).Slice()
	default:
		raw, err = tokenBucketScript.Run(ctx, s.client, []string{fullKey}, config.Limit, config.Burst, windowMs, now.UnixMilli()).Slice()
	}
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script failed: %w", err)
	}
	if len(raw) < 4 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply of %d values", len(raw))
	}

	result := Result{
		Allowed:   toInt64(raw[0]) == 1,
		Limit:     config.Limit,
		Remaining: toInt64(raw[1]),
		ResetAt:   now.Add(time.Duration(toInt64(raw[3])) * time.Millisecond),
	}
	if !result.Allowed {
		result.RetryAfter = time.Duration(toInt64(raw[2])) * time.Millisecond
	}
	return result, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}

	deleter, ok := s.client.(redis.Cmdable)
	if !ok {
		return errors.New("ratelimit: redis client cannot delete keys")
	}
	return deleter.Del(ctx, s.prefix+":"+key).Err()
}

func (s *RedisStore) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
