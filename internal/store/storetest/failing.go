// Package storetest provides key-value store doubles for tests.
package storetest

import (
	"context"
	"errors"
	"sync"

	"phonelogin/internal/domain"
)

// ErrUnavailable is the default failure injected by FailingStore.
var ErrUnavailable = errors.New("storage unavailable")

// FailingStore wraps another store and fails selected operations on demand.
type FailingStore struct {
	Next domain.KeyValueStore

	mu       sync.Mutex
	failures map[domain.StorageOp]error
	calls    map[domain.StorageOp]int
}

// New wraps next.
func New(next domain.KeyValueStore) *FailingStore {
	return &FailingStore{
		Next:     next,
		failures: make(map[domain.StorageOp]error),
		calls:    make(map[domain.StorageOp]int),
	}
}

// Fail makes every future op return err. A nil err selects ErrUnavailable.
func (s *FailingStore) Fail(op domain.StorageOp, err error) {
	if err == nil {
		err = ErrUnavailable
	}
	s.mu.Lock()
	s.failures[op] = err
	s.mu.Unlock()
}

// Calls returns how many times op reached this store.
func (s *FailingStore) Calls(op domain.StorageOp) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *FailingStore) check(op domain.StorageOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.failures[op]
}

func (s *FailingStore) GetItem(ctx context.Context, key domain.Key) (string, bool, error) {
	if err := s.check(domain.OpRead); err != nil {
		return "", false, err
	}
	return s.Next.GetItem(ctx, key)
}

func (s *FailingStore) SetItem(ctx context.Context, key domain.Key, value string) error {
	if err := s.check(domain.OpWrite); err != nil {
		return err
	}
	return s.Next.SetItem(ctx, key, value)
}

func (s *FailingStore) RemoveItem(ctx context.Context, key domain.Key) error {
	if err := s.check(domain.OpDelete); err != nil {
		return err
	}
	return s.Next.RemoveItem(ctx, key)
}

var _ domain.KeyValueStore = (*FailingStore)(nil)
