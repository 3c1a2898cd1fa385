package kvstore

import (
	"context"

	"github.com/pkg/errors"
)

// Keys used by the app in the device store. Each key is independent;
// there is no transaction spanning several of them.
const (
	KeyToken = "token" // raw bearer token
	KeyUser  = "user"  // serialized user record, token excluded
	KeyTheme = "theme" // "dark" or "light"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the device-local key/value store holding the app's persisted
// state. Deleting an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
