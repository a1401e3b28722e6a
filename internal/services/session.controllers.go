package services

import (
	"strings"
	"sync"
	"time"

	"github.com/joshuarp/flight-admin/internal/fetch"
)

// SessionControllers keeps one controller per gateway session so that a newer
// request supersedes an older one of the same session. Entries unused for
// longer than the idle TTL are dropped on the next lookup.
type SessionControllers[P, R any] struct {
	mu      sync.Mutex
	idleTTL time.Duration
	now     func() time.Time
	entries map[string]*sessionController[P, R]
}

type sessionController[P, R any] struct {
	controller *fetch.Controller[P, R]
	lastUsed   time.Time
	last       P
	hasLast    bool
}

func NewSessionControllers[P, R any](idleTTL time.Duration) *SessionControllers[P, R] {
	return &SessionControllers[P, R]{
		idleTTL: idleTTL,
		now:     time.Now,
		entries: make(map[string]*sessionController[P, R]),
	}
}

// Get returns the controller of the session, building it on first use.
func (r *SessionControllers[P, R]) Get(sessionID string, build func() (*fetch.Controller[P, R], error)) (*fetch.Controller[P, R], error) {
	id := strings.TrimSpace(sessionID)
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked(now)
	if entry, ok := r.entries[id]; ok {
		entry.lastUsed = now
		return entry.controller, nil
	}

	controller, err := build()
	if err != nil {
		return nil, err
	}
	r.entries[id] = &sessionController[P, R]{controller: controller, lastUsed: now}
	return controller, nil
}

// Remember records the last payload that succeeded for the session.
func (r *SessionControllers[P, R]) Remember(sessionID string, payload P) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[strings.TrimSpace(sessionID)]; ok {
		entry.last = payload
		entry.hasLast = true
	}
}

// Last returns the controller and the payload remembered for the session.
func (r *SessionControllers[P, R]) Last(sessionID string) (*fetch.Controller[P, R], P, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero P
	entry, ok := r.entries[strings.TrimSpace(sessionID)]
	if !ok || !entry.hasLast {
		return nil, zero, false
	}
	return entry.controller, entry.last, true
}

// Forget drops the session's controller. An in-flight call still settles.
func (r *SessionControllers[P, R]) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, strings.TrimSpace(sessionID))
}

func (r *SessionControllers[P, R]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *SessionControllers[P, R]) sweepLocked(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, entry := range r.entries {
		if now.Sub(entry.lastUsed) > r.idleTTL {
			delete(r.entries, id)
		}
	}
}
