package persistence

import (
	"context"
	"time"

	"phonelogin/internal/domain"
	domaintypes "phonelogin/internal/domain/types"
	"phonelogin/internal/logging"
)

// Service performs storage operations off the caller's goroutine.
type Service struct {
	store   domain.KeyValueStore
	timeout time.Duration
	log     *logging.Logger
}

// New returns a gateway over store. A positive timeout bounds each
// operation; a nil logger discards output.
func New(store domain.KeyValueStore, timeout time.Duration, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Service{store: store, timeout: timeout, log: log.WithComponent("persistence")}
}

// Read fetches key.
func (s *Service) Read(ctx context.Context, key domain.Key) <-chan domain.Result[domain.Lookup] {
	return run(ctx, s, domain.OpRead, key, func(ctx context.Context) (domain.Lookup, error) {
		v, ok, err := s.store.GetItem(ctx, key)
		return domain.Lookup{Value: v, Found: ok}, err
	})
}

// Write stores value under key.
func (s *Service) Write(ctx context.Context, key domain.Key, value string) <-chan domain.Result[domain.Done] {
	return run(ctx, s, domain.OpWrite, key, func(ctx context.Context) (domain.Done, error) {
		return domain.Done{}, s.store.SetItem(ctx, key, value)
	})
}

// Delete removes key.
func (s *Service) Delete(ctx context.Context, key domain.Key) <-chan domain.Result[domain.Done] {
	return run(ctx, s, domain.OpDelete, key, func(ctx context.Context) (domain.Done, error) {
		return domain.Done{}, s.store.RemoveItem(ctx, key)
	})
}

func run[T any](
	ctx context.Context,
	s *Service,
	op domain.StorageOp,
	key domain.Key,
	fn func(context.Context) (T, error),
) <-chan domain.Result[T] {
	out := make(chan domain.Result[T], 1)
	go func() {
		defer close(out)

		opCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			opCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		v, err := fn(opCtx)
		if err != nil {
			out <- domaintypes.Err[T](&domain.StorageError{Op: op, Key: key, Err: err})
			return
		}
		s.log.Debug("storage op finished", "op", string(op), "key", key.String())
		out <- domaintypes.Ok(v)
	}()
	return out
}

// Await blocks until ch delivers or ctx is done. A closed channel without a
// value is reported as a storage failure.
func Await[T any](ctx context.Context, ch <-chan domain.Result[T]) domain.Result[T] {
	select {
	case r, ok := <-ch:
		if !ok {
			return domaintypes.Err[T](errClosed)
		}
		return r
	case <-ctx.Done():
		return domaintypes.Err[T](ctx.Err())
	}
}

var errClosed = errString("persistence: result channel closed without a value")

type errString string

func (e errString) Error() string { return string(e) }

// Compile-time assertion that Service implements domain.PersistenceGateway.
var _ domain.PersistenceGateway = (*Service)(nil)
