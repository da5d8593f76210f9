// Package kv defines the opaque key-value capability the round store persists
// through, plus the non-Postgres backends. The Postgres backend lives in
// package repo alongside the rest of the SQL.
package kv

import "context"

// Store is a string key-value store.
// Implementations must be safe for concurrent use. They do not need to
// serialize read-modify-write sequences; callers that need that hold their
// own lock.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
