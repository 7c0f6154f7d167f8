package storetest

import (
	"context"
	"sync"

	"phonelogin/internal/domain"
)

// GatedStore wraps another store and parks selected operations until the
// test releases them. A parked operation has already passed its context
// check, so it completes even if the caller gives up waiting.
type GatedStore struct {
	Next domain.KeyValueStore

	mu    sync.Mutex
	gates map[domain.StorageOp]*gate
}

type gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// NewGated wraps next.
func NewGated(next domain.KeyValueStore) *GatedStore {
	return &GatedStore{Next: next, gates: make(map[domain.StorageOp]*gate)}
}

// Hold parks the next call of op. entered is closed once the call reaches
// the store; release lets it proceed.
func (s *GatedStore) Hold(op domain.StorageOp) (entered <-chan struct{}, release func()) {
	g := &gate{entered: make(chan struct{}), release: make(chan struct{})}
	s.mu.Lock()
	s.gates[op] = g
	s.mu.Unlock()
	return g.entered, func() { g.once.Do(func() { close(g.release) }) }
}

func (s *GatedStore) wait(ctx context.Context, op domain.StorageOp) context.Context {
	s.mu.Lock()
	g := s.gates[op]
	delete(s.gates, op)
	s.mu.Unlock()
	if g == nil {
		return ctx
	}
	close(g.entered)
	<-g.release
	return context.WithoutCancel(ctx)
}

func (s *GatedStore) GetItem(ctx context.Context, key domain.Key) (string, bool, error) {
	return s.Next.GetItem(s.wait(ctx, domain.OpRead), key)
}

func (s *GatedStore) SetItem(ctx context.Context, key domain.Key, value string) error {
	return s.Next.SetItem(s.wait(ctx, domain.OpWrite), key, value)
}

func (s *GatedStore) RemoveItem(ctx context.Context, key domain.Key) error {
	return s.Next.RemoveItem(s.wait(ctx, domain.OpDelete), key)
}

var _ domain.KeyValueStore = (*GatedStore)(nil)
