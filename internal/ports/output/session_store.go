package output

import "context"

// SessionStore interface - Output port
// Defines the key-value persistence the client needs for its session state.
// Implementations may be in-process, Redis or PostgreSQL backed and must be
// safe for concurrent access.
type SessionStore interface {
	// Get returns the value stored under key. The boolean is false when the key
	// is not set; an error is returned only on a storage access failure.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Clear removes every key held by the store. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
