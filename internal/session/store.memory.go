package session

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps tokens in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]Token)}
}

func (s *MemoryStore) GetToken(_ context.Context, sessionID string) (*Token, error) {
	id, err := normalizeID(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[id]
	if !ok {
		return nil, nil
	}
	return &token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, sessionID string, token Token) error {
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tokens[id] = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	id, err := normalizeID(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.tokens, id)
	s.mu.Unlock()
	return nil
}
