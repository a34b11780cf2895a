package cart

import "errors"

// ErrNotFound is returned by Storage.Load when nothing is stored under a key.
var ErrNotFound = errors.New("cart storage: key not found")

// Storage is the durable key-value store the engine persists into. One key
// holds one serialized line collection.
type Storage interface {
	Load(key string) ([]byte, error)
	Store(key string, value []byte) error
	Delete(key string) error
}
