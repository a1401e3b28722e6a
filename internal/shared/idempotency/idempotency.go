// Package idempotency lets flight writes be retried safely. A write carries a
// client key; the first request with that key runs, later ones with the same
// payload get the stored response back.
package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"

	defaultLockTTL = 30 * time.Second
)

type Request struct {
	// Scope isolates keys, typically "flights:<session id>".
	Scope       string
	Key         string
	RequestHash string
	LockTTL     time.Duration
}

type Decision struct {
	Type     DecisionType
	Response StoredResponse
}

type StoredResponse struct {
	StatusCode  int    `json:"status_code"`
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
}

type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error
	// Release drops an in-progress key so the client may retry, used when the
	// write failed before producing a response worth replaying.
	Release(ctx context.Context, request Request) error
}

func (r Request) normalize() (Request, error) {
	r.Scope = strings.TrimSpace(r.Scope)
	r.Key = strings.TrimSpace(r.Key)
	r.RequestHash = strings.TrimSpace(r.RequestHash)

	switch {
	case r.Scope == "":
		return r, errors.New("idempotency: scope is required")
	case r.Key == "":
		return r, errors.New("idempotency: key is required")
	case r.RequestHash == "":
		return r, errors.New("idempotency: request hash is required")
	}

	if r.LockTTL <= 0 {
		r.LockTTL = defaultLockTTL
	}
	return r, nil
}
