package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork wraps transport-level failures (timeout, connection refused,
// DNS). Match with errors.Is.
var ErrNetwork = errors.New("network error")

// APIError is a backend rejection. Detail carries the backend's own
// message verbatim (the FastAPI "detail" field) so the UI layer can show
// it to the user unchanged.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// IsAuthError reports whether err is a 401: invalid credentials or a
// missing/expired token.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsConflictError reports whether err is a 409, e.g. registering an email
// that already has an account.
func IsConflictError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// IsValidationError reports whether err is a client-side rejection other
// than auth or conflict (422 from the backend validator, 400, etc).
func IsValidationError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized, http.StatusConflict:
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}

// Detail extracts the backend message from err, or returns fallback when
// the error carries none (network failures, empty bodies).
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
