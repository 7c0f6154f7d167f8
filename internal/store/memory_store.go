package store

import (
	"context"
	"sync"

	"phonelogin/internal/domain"
)

// MemoryStore keeps items in memory; everything is lost on process exit.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[domain.Key]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[domain.Key]string)}
}

func (s *MemoryStore) GetItem(ctx context.Context, key domain.Key) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	return v, ok, nil
}

func (s *MemoryStore) SetItem(ctx context.Context, key domain.Key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) RemoveItem(ctx context.Context, key domain.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored items.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

var _ domain.KeyValueStore = (*MemoryStore)(nil)
