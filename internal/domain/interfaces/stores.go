package interfaces

import (
	"context"

	domaintypes "phonelogin/internal/domain/types"
)

// KeyValueStore is durable device storage holding string values by key.
// Removing a key that does not exist is not an error.
type KeyValueStore interface {
	GetItem(ctx context.Context, key domaintypes.Key) (value string, ok bool, err error)
	SetItem(ctx context.Context, key domaintypes.Key, value string) error
	RemoveItem(ctx context.Context, key domaintypes.Key) error
}
