package credentials

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the token in a 0600 file under the user config
// directory. This is the reduced-security fallback for hosts without a
// keyring (headless servers, CI); the file is readable by anyone with the
// user's filesystem access, unlike a keychain entry.
type FileStore struct {
	path string
}

// NewFileStore creates the store directory if needed and returns a store
// writing to <UserConfigDir>/fec-analyzer/token.
func NewFileStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve user config dir: %w", err)
	}
	dir = filepath.Join(dir, "fec-analyzer")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("could not create credential dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "token")}, nil
}

// NewFileStoreAt returns a store writing to an explicit path. Used by
// tests and by callers that manage their own config layout.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read credential file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(_ context.Context, token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("could not write credential file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete credential file: %w", err)
	}
	return nil
}
