package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotLoaded is returned when a store is used before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when there is nothing to load.
	ErrNotInitialized = errors.New("storage not initialized, run 'studylit init' first")
)

// Provider is an asynchronous key/value store of string blobs. Values are
// opaque to the store; callers decide the encoding.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value stored under key. found is false when the key
	// has never been set or was removed.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	RemoveMany(ctx context.Context, keys []string) error

	// Utils
	GetConfigPath() string
}

// Entry is one key/value pair bound for the store.
type Entry struct {
	Key   string
	Value string
}

// Migrator is implemented by SQL-backed providers.
type Migrator interface {
	// Migrate applies pending schema migrations and returns how many ran.
	Migrate(logFn func(string)) (int, error)
	// PendingMigrations reports how many migrations have not been applied.
	PendingMigrations() (int, error)
}
