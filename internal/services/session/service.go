package session

import (
	"context"
	"sync"

	"phonelogin/internal/domain"
	"phonelogin/internal/logging"
	"phonelogin/internal/phone"
	"phonelogin/internal/services/persistence"
)

// StorageKey is the fixed key holding the logged-in phone number.
const StorageKey domain.Key = "phoneNumber"

// Service owns the session state.
//
// State transitions:
//   - LoggedOut -> LoggedIn on a successful Login.
//   - LoggedIn -> LoggedOut on a successful Logout.
//   - Restore seeds the state from storage once at startup, unless a
//     Login or Logout completed while its read was in flight.
//
// A failed storage call leaves the state exactly as it was.
type Service struct {
	gateway domain.PersistenceGateway
	log     *logging.Logger

	mu    sync.Mutex
	state domain.State
	gen   uint64 // bumped on every completed transition
}

// New constructs a Service in the LoggedOut state.
func New(gateway domain.PersistenceGateway, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Service{
		gateway: gateway,
		log:     log.WithComponent("session"),
		state:   domain.LoggedOutState(),
	}
}

// State returns the current session state.
func (s *Service) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore reads the stored session and adopts it.
//
// A stored value that does not strip down to ten digits is ignored (and left
// in storage) so the state never holds a non-canonical number.
func (s *Service) Restore(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	started := s.gen
	s.mu.Unlock()

	lookup, err := persistence.Await(ctx, s.gateway.Read(ctx, StorageKey)).Unwrap()
	if err != nil {
		err = asStorageError(domain.OpRead, err)
		s.log.Error("restore session failed", "error", err)
		return s.State(), err
	}

	next := domain.LoggedOutState()
	switch {
	case !lookup.Found:
		s.log.Debug("no stored session")
	case !phone.Valid(phone.Clean(lookup.Value)):
		s.log.Warn("ignoring malformed stored session", "key", StorageKey.String())
	default:
		next = domain.LoggedInState(domain.PhoneNumber(phone.Format(lookup.Value)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != started {
		s.log.Debug("stale restore discarded")
		return s.state, nil
	}
	s.state = next
	if next.LoggedIn() {
		s.log.Info("session restored")
	}
	return next, nil
}

// Login validates raw input and persists its canonical form.
//
// Steps:
//  1. Strip non-digits and run the ten-digit check; abort with a
//     ValidationError if it fails.
//  2. Format the digits as "(XXX) XXX-XXXX".
//  3. Write the value under StorageKey and wait for the result.
//  4. Only then switch to LoggedIn.
func (s *Service) Login(ctx context.Context, raw string) (domain.State, error) {
	number, err := phone.Canonical(raw)
	if err != nil {
		s.log.Debug("login rejected", "reason", "invalid phone number")
		return s.State(), err
	}

	if err := settle(ctx, s.gateway.Write(ctx, StorageKey, number.String())).Error(); err != nil {
		err = asStorageError(domain.OpWrite, err)
		s.log.Error("login failed", "error", err)
		return s.State(), err
	}

	next := s.transition(domain.LoggedInState(number))
	s.log.Info("logged in")
	return next, nil
}

// Logout deletes the stored session. Logging out while already logged out
// is a no-op and touches no storage.
func (s *Service) Logout(ctx context.Context) (domain.State, error) {
	if !s.State().LoggedIn() {
		return s.State(), nil
	}

	if err := settle(ctx, s.gateway.Delete(ctx, StorageKey)).Error(); err != nil {
		err = asStorageError(domain.OpDelete, err)
		s.log.Error("logout failed", "error", err)
		return s.State(), err
	}

	next := s.transition(domain.LoggedOutState())
	s.log.Info("logged out")
	return next, nil
}

func (s *Service) transition(next domain.State) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
	s.gen++
	return next
}

// settle waits for a write or delete to finish even after ctx is done. A
// store that already started the operation may still complete it, and the
// state has to follow what the store did.
func settle[T any](ctx context.Context, ch <-chan domain.Result[T]) domain.Result[T] {
	r := persistence.Await(ctx, ch)
	if err := r.Error(); err == nil || domain.IsStorage(err) || ctx.Err() == nil {
		return r
	}
	return persistence.Await(context.WithoutCancel(ctx), ch)
}

// asStorageError makes sure every gateway failure (including a cancelled
// wait) reaches callers as a *domain.StorageError.
func asStorageError(op domain.StorageOp, err error) error {
	if domain.IsStorage(err) {
		return err
	}
	return &domain.StorageError{Op: op, Key: StorageKey, Err: err}
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
