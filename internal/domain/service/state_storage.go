package service

import "context"

// StateStorage is the local persistent key-value cache that survives restarts.
type StateStorage interface {
	// Load decodes the value stored under key into v. It reports false when
	// nothing is stored under key.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Save encodes v and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
