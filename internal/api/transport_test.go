package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler, store credentials.Store) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, store, logging.Nop())
}

func TestTransport_AttachesBearerWhenTokenPresent(t *testing.T) {
	store := credentials.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "T1"))

	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok","user_email":"a@b.com"}`))
	}), store)

	_, err := client.TestAuth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer T1", gotAuth)
}

func TestTransport_NoHeaderWhenNoToken(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}), credentials.NewMemoryStore())

	_, err := client.TestAuth(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.False(t, hasHeader)
}

func TestTransport_StorageReadFailureDoesNotAbortRequest(t *testing.T) {
	store := credentials.NewMemoryStore()
	store.GetErr = errors.New("keyring locked")

	var called bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}), store)

	_, err := client.TestAuth(context.Background())
	require.NoError(t, err)
	require.True(t, called)
}

func TestTransport_401DeletesCredentialAndPropagatesError(t *testing.T) {
	ctx := context.Background()
	store := credentials.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "stale"))

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token expiré"}`))
	}), store)

	_, err := client.GetCurrentUser(ctx)
	require.Error(t, err)
	require.True(t, IsAuthError(err))
	require.Equal(t, "Token expiré", Detail(err, "fallback"))

	token, getErr := store.Get(ctx)
	require.NoError(t, getErr)
	require.Empty(t, token, "401 must delete the stored credential")
}

func TestTransport_401OnAnyEndpointDeletesCredential(t *testing.T) {
	ctx := context.Background()

	calls := []func(c *Client) error{
		func(c *Client) error { _, err := c.GetCurrentUser(ctx); return err },
		func(c *Client) error { _, err := c.TestAuth(ctx); return err },
		func(c *Client) error { _, err := c.History(ctx); return err },
		func(c *Client) error { _, err := c.Detail(ctx, "abc"); return err },
		func(c *Client) error { _, err := c.GenerateAndProcess(ctx, 10); return err },
	}

	for i, call := range calls {
		store := credentials.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "stale"))

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), store)

		err := call(client)
		require.Error(t, err, "call %d", i)
		require.True(t, IsAuthError(err), "call %d", i)

		token, getErr := store.Get(ctx)
		require.NoError(t, getErr)
		require.Empty(t, token, "call %d must delete the credential", i)
	}
}

func TestTransport_Non401LeavesCredentialAlone(t *testing.T) {
	ctx := context.Background()
	store := credentials.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "T1"))

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"Un compte existe déjà avec cet email"}`))
	}), store)

	_, err := client.GetCurrentUser(ctx)
	require.Error(t, err)
	require.True(t, IsConflictError(err))

	token, getErr := store.Get(ctx)
	require.NoError(t, getErr)
	require.Equal(t, "T1", token)
}
