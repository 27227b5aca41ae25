package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
	"github.com/fec-analyzer/cli/internal/models"
)

func TestRegister(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bob", req.Username)

		json.NewEncoder(w).Encode(models.User{
			ID: "u1", Username: req.Username, Email: req.Email, IsActive: true,
		})
	}), credentials.NewMemoryStore())

	user, err := client.Register(context.Background(), models.RegisterRequest{
		Username: "bob", Email: "bob@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.True(t, user.IsActive)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"Un compte existe déjà avec cet email"}`))
	}), credentials.NewMemoryStore())

	_, err := client.Register(context.Background(), models.RegisterRequest{
		Username: "bob", Email: "bob@x.com", Password: "secret1",
	})
	require.Error(t, err)
	require.True(t, IsConflictError(err))
	require.Equal(t, "Un compte existe déjà avec cet email", Detail(err, ""))
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@b.com", req.Email)

		json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "T1", TokenType: "bearer"})
	}), credentials.NewMemoryStore())

	token, err := client.Login(context.Background(), models.LoginRequest{
		Email: "a@b.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "T1", token.AccessToken)
	require.Equal(t, "bearer", token.TokenType)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Email ou mot de passe incorrect"}`))
	}), credentials.NewMemoryStore())

	_, err := client.Login(context.Background(), models.LoginRequest{
		Email: "a@b.com", Password: "wrong",
	})
	require.Error(t, err)
	require.True(t, IsAuthError(err))
	require.Equal(t, "Email ou mot de passe incorrect", Detail(err, ""))
}

func TestGetCurrentUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "a@b.com"})
	}), credentials.NewMemoryStore())

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)
}

func TestValidationErrorClassification(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"value is not a valid email address"}`))
	}), credentials.NewMemoryStore())

	_, err := client.Register(context.Background(), models.RegisterRequest{})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.False(t, IsAuthError(err))
	require.False(t, IsConflictError(err))
}

func TestNetworkErrorWrapping(t *testing.T) {
	// Point the client at a server that is already gone.
	store := credentials.NewMemoryStore()
	client := NewClient("http://127.0.0.1:1", store, logging.Nop())

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNetwork)
}

func TestDetailFallback(t *testing.T) {
	require.Equal(t, "fallback", Detail(ErrNetwork, "fallback"))
	require.Equal(t, "fallback", Detail(&APIError{StatusCode: 500}, "fallback"))
	require.Equal(t, "boom", Detail(&APIError{StatusCode: 500, Detail: "boom"}, "fallback"))
}
