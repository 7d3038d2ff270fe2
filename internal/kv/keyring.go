package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name entries are stored under.
const KeyringService = "taoquotes"

// KeyringStore keeps each key as a secret in the OS keychain (Keychain on
// macOS, Secret Service on Linux, Credential Manager on Windows).
type KeyringStore struct {
	serviceName string
}

// NewKeyringStore returns a keyring-backed store. An empty serviceName
// falls back to KeyringService.
func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = KeyringService
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) Get(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(k.serviceName, key)
	if err == nil {
		return value, true, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	return "", false, fmt.Errorf("kv: keyring get %q failed: %w", key, err)
}

func (k *KeyringStore) Set(_ context.Context, key, value string) error {
	if err := keyring.Set(k.serviceName, key, value); err != nil {
		return fmt.Errorf("kv: keyring set %q failed: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Close() error { return nil }
