package prefs

import (
	"context"
	"sync"

	"linkbrief/internal/domain"
)

// MemoryStore is the default Store. Preferences live for the lifetime of the
// process only. Entries of different users are independent, so a single
// mutex over the map is enough to make per-user reads and writes atomic.
type MemoryStore struct {
	mu        sync.RWMutex
	languages map[int64]domain.Language
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		languages: make(map[int64]domain.Language),
	}
}

func (s *MemoryStore) Set(_ context.Context, userID int64, language domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages[userID] = language

	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (domain.Language, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	language, ok := s.languages[userID]

	return language, ok, nil
}
