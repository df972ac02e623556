package kv

import (
	"context"
)

// Repository is the key-value contract of the shared storage.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// Storage is a Repository whose writes can be grouped atomically.
type Storage interface {
	Repository

	// Update runs fn against a transactional repository. All writes made
	// through repo are committed together when fn returns nil and discarded
	// otherwise.
	Update(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
