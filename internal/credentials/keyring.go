package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "fec-analyzer"

// KeyringStore keeps the token in the OS keychain (Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows).
type KeyringStore struct{}

// NewKeyringStore returns a store backed by the platform keyring.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Available probes the keyring with a read of the token key. A missing
// entry means the keyring works; any other error means it does not.
func (s *KeyringStore) Available() bool {
	_, err := keyring.Get(keyringService, TokenKey)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

func (s *KeyringStore) Get(_ context.Context) (string, error) {
	token, err := keyring.Get(keyringService, TokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring read failed: %w", err)
	}
	return token, nil
}

func (s *KeyringStore) Set(_ context.Context, token string) error {
	if err := keyring.Set(keyringService, TokenKey, token); err != nil {
		return fmt.Errorf("keyring write failed: %w", err)
	}
	return nil
}

func (s *KeyringStore) Delete(_ context.Context) error {
	err := keyring.Delete(keyringService, TokenKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete failed: %w", err)
	}
	return nil
}
