package interfaces

import (
	"context"

	domaintypes "phonelogin/internal/domain/types"
)

// PersistenceGateway reads, writes and deletes a single key without blocking
// the caller. Each returned channel delivers exactly one result and is then
// closed.
type PersistenceGateway interface {
	Read(ctx context.Context, key domaintypes.Key) <-chan domaintypes.Result[domaintypes.Lookup]
	Write(ctx context.Context, key domaintypes.Key, value string) <-chan domaintypes.Result[domaintypes.Done]
	Delete(ctx context.Context, key domaintypes.Key) <-chan domaintypes.Result[domaintypes.Done]
}

// SessionService drives the LoggedOut/LoggedIn transitions.
type SessionService interface {
	Restore(ctx context.Context) (domaintypes.State, error)
	Login(ctx context.Context, raw string) (domaintypes.State, error)
	Logout(ctx context.Context) (domaintypes.State, error)
	State() domaintypes.State
}
