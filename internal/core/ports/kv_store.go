package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for an absent key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the persistence port shared by all repositories. It models the
// flat key-value namespace the application state lives in: a handful of keys
// ("users", "session", "tasks"), each holding one JSON document.
//
// Implementations provide no cross-process coordination. Callers that
// read-modify-write a document can lose updates to a concurrent writer; that
// whole-document last-write-wins behaviour is an accepted property of the
// storage model, not something backends are expected to fix.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Ping verifies the backend is reachable (readiness probes).
	Ping(ctx context.Context) error
}
