// Package credentials persists the bearer token proving an authenticated
// session. Exactly one token exists at a time, stored under a fixed key;
// it is overwritten on login and removed on logout or when the backend
// rejects it.
package credentials

import (
	"context"

	"github.com/fec-analyzer/cli/internal/logging"
)

// TokenKey is the fixed identifier the token is stored under.
const TokenKey = "jwt_token"

// Store is the credential store contract. Get returns an empty string when
// no token is present; absence is not an error. Implementations must
// tolerate Delete on a missing token.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// NewStore selects the most secure backend available: the OS keyring when
// reachable, otherwise a plain file under the user config directory. The
// file fallback is a reduced-security mode and is logged as such.
func NewStore(log logging.Logger) Store {
	if ks := NewKeyringStore(); ks.Available() {
		log.Debug("credential store selected", "backend", "keyring")
		return ks
	}
	fs, err := NewFileStore()
	if err != nil {
		log.Error("no credential store backend available", "error", err)
		return NewMemoryStore()
	}
	log.Warn("OS keyring unavailable, falling back to file storage (reduced security)",
		"path", fs.path)
	return fs
}
