package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisEntry is stored as JSON under prefix:scope:key.
type redisEntry struct {
	RequestHash string         `json:"request_hash"`
	Status      string         `json:"status"`
	Response    StoredResponse `json:"response"`
}

// RedisStore keeps keys in Redis. An in-progress entry expires with its lock;
// completed entries live for the retention period.
type RedisStore struct {
	client    redis.UniversalClient
	prefix    string
	retention time.Duration
}

type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func WithRetention(retention time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if retention > 0 {
			s.retention = retention
		}
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "idempotency", retention: 24 * time.Hour}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(request Request) string {
	return s.prefix + ":" + request.Scope + ":" + request.Key
}

func (s *RedisStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	if s == nil || s.client == nil {
		return Decision{}, errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return Decision{}, err
	}

	payload, err := json.Marshal(redisEntry{RequestHash: request.RequestHash, Status: statusInProgress})
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: encode entry: %w", err)
	}

	key := s.key(request)
	acquired, err := s.client.SetNX(ctx, key, payload, request.LockTTL).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: acquire key: %w", err)
	}
	if acquired {
		return Decision{Type: DecisionAcquired}, nil
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Lock expired between SETNX and GET.
		return s.Acquire(ctx, request)
	}
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: read key: %w", err)
	}

	var entry redisEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Decision{}, fmt.Errorf("idempotency: decode entry: %w", err)
	}

	switch {
	case entry.RequestHash != request.RequestHash:
		return Decision{Type: DecisionConflict}, nil
	case entry.Status == statusCompleted:
		return Decision{Type: DecisionReplay, Response: entry.Response}, nil
	default:
		return Decision{Type: DecisionInProgress}, nil
	}
}

func (s *RedisStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	if s == nil || s.client == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(redisEntry{
		RequestHash: request.RequestHash,
		Status:      statusCompleted,
		Response:    response,
	})
	if err != nil {
		return fmt.Errorf("idempotency: encode entry: %w", err)
	}

	// XX: only overwrite a key this request still holds.
	ok, err := s.client.SetXX(ctx, s.key(request), payload, s.retention).Result()
	if err != nil {
		return fmt.Errorf("idempotency: persist response: %w", err)
	}
	if !ok {
		return errors.New("idempotency: key not found for completion")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, request Request) error {
	if s == nil || s.client == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := request.normalize()
	if err != nil {
		return err
	}

	key := s.key(request)
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("idempotency: read key: %w", err)
	}

	var entry redisEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return fmt.Errorf("idempotency: decode entry: %w", err)
	}
	if entry.Status != statusInProgress || entry.RequestHash != request.RequestHash {
		return nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("idempotency: release key: %w", err)
	}
	return nil
}
