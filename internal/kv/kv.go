// Package kv provides the durable key-value storage that backs taoquotes
// favorites and settings.
//
// Values are opaque strings (the state package stores JSON). Backends:
//
//	sqlite   one row per key in ~/.config/taoquotes/taoquotes.db (default)
//	file     one file per key under ~/.config/taoquotes/data
//	keyring  one secret per key in the OS keychain
//	memory   process-local map, for tests
//
// The paths above are relative to os.UserConfigDir.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/taoquotes/internal/database"
)

// Store is a string-keyed durable store.
type Store interface {
	// Get returns the value stored under key. ok is false, with a nil
	// error, when nothing has been stored yet.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Close releases backend resources.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendSQLite  Backend = "sqlite"
	BackendFile    Backend = "file"
	BackendKeyring Backend = "keyring"
	BackendMemory  Backend = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("kv: unknown backend")

// Open returns the named backend at its default location.
func Open(backend Backend) (Store, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(string(backend)))) {
	case BackendSQLite, "":
		path, err := database.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("kv: %w", err)
		}
		return OpenSQLite(path)
	case BackendFile:
		dir, err := DefaultFileDir()
		if err != nil {
			return nil, err
		}
		return NewFileStore(dir), nil
	case BackendKeyring:
		return NewKeyringStore(KeyringService), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
}
