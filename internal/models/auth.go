package models

// User represents the authenticated account as returned by the backend.
// It is an immutable snapshot: each fetch replaces the previous value
// wholesale, there is no local merge.
type User struct {
	ID        string `json:"id" yaml:"id"`
	Username  string `json:"username" yaml:"username"`
	Email     string `json:"email" yaml:"email"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	IsActive  bool   `json:"is_active" yaml:"is_active"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TestAuthResponse is the protected diagnostic echo from /fec/test-auth.
type TestAuthResponse struct {
	Message   string `json:"message" yaml:"message"`
	UserEmail string `json:"user_email" yaml:"user_email"`
}
