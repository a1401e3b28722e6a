package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps tokens in Redis so every gateway instance sees the same
// session credentials.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisStoreOption configures the Redis store.
type RedisStoreOption func(*RedisStore)

// WithRedisPrefix sets a prefix for all Redis keys.
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisTTL expires idle sessions. Zero keeps tokens until cleared.
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "session",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

func (s *RedisStore) GetToken(ctx context.Context, sessionID string) (*Token, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("session: redis store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: redis get failed: %w", err)
	}

	var token Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("session: failed to decode stored token: %w", err)
	}
	return &token, nil
}

func (s *RedisStore) SetToken(ctx context.Context, sessionID string, token Token) error {
	if s == nil || s.client == nil {
		return errors.New("session: redis store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("session: failed to encode token: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if s == nil || s.client == nil {
		return errors.New("session: redis store is not initialized")
	}
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session: redis del failed: %w", err)
	}
	return nil
}
