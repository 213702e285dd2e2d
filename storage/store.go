package storage

import "errors"

// ErrNotFound is returned when no blob exists under the given key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key-value substrate for string blobs. Carts, sessions
// and the registered-user list are persisted through it as JSON.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
