package credentials

import (
	"context"
	"sync"
)

// MemoryStore holds the token in memory only. Last-resort backend when
// neither keyring nor filesystem is usable, and the fake of choice in
// tests. Error fields allow behavior injection.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	has   bool

	GetErr    error
	SetErr    error
	DeleteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.GetErr != nil {
		return "", s.GetErr
	}
	if !s.has {
		return "", nil
	}
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.token = token
	s.has = true
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.token = ""
	s.has = false
	return nil
}
