// Package utils provides input validation shared by the auth commands.
// Validation runs before any network call so obviously malformed input
// never reaches the backend.
package utils

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword validates a password
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	return nil
}

// ValidateUsername validates an account username
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}

	if len(username) > 100 {
		return fmt.Errorf("username must be less than 100 characters")
	}

	if !validUsername.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, hyphens, and underscores")
	}

	return nil
}
