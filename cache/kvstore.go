// Package cache provides the pluggable key-value store used for derived data
// (aggregated stats). The Redis implementation is the primary store; the
// in-memory one is the fallback selected at startup when Redis is not
// reachable, so the service keeps working without external infrastructure.
package cache

import "errors"

// ErrKeyNotFound is returned by Get for keys that were never set or have
// been deleted.
var ErrKeyNotFound = errors.New("cache: key not found")

type KVStore interface {
	Get(key string) (string, error)
	Set(key string, value string) error
	Delete(key string) error
}
