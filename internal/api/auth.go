package api

import (
	"context"

	"github.com/fec-analyzer/cli/internal/models"
)

// AuthAPI is the set of authentication endpoints the session layer needs.
// The interface exists so the session state machine can be tested against
// a fake backend.
type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	TestAuth(ctx context.Context) (*models.TestAuthResponse, error)
}

// Register creates a new account. The backend rejects duplicate emails
// with a conflict error.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token. It does not persist the
// token; that is the session layer's job.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	var token models.TokenResponse
	if err := c.postJSON(ctx, "/auth/login", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GetCurrentUser fetches the profile the attached token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TestAuth is a protected diagnostic echo, useful for verifying that the
// stored token still works.
func (c *Client) TestAuth(ctx context.Context) (*models.TestAuthResponse, error) {
	var out models.TestAuthResponse
	if err := c.get(ctx, "/fec/test-auth", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
