package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the save record in process memory. It is the default
// backend for the prototype and for tests.
type MemoryStore struct {
	mu       sync.Mutex
	data     *SaveData
	helpSeen bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (SaveData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return DefaultSaveData(), nil
	}
	return s.data.Clone().Normalized(), nil
}

func (s *MemoryStore) Save(ctx context.Context, data SaveData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cloned := data.Clone().Normalized()
	s.data = &cloned
	return nil
}

func (s *MemoryStore) LoadHelpSeen(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.helpSeen, nil
}

func (s *MemoryStore) SaveHelpSeen(ctx context.Context, seen bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.helpSeen = seen
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.helpSeen = false
	return nil
}

var _ Store = (*MemoryStore)(nil)
