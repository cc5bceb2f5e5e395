package service

import (
	"errors"
	"sort"
	"strings"

	"hospital-bed-booking/internal/models"
)

var (
	// ErrInvalidCredentials is returned on an unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when the actor's role or ownership forbids the operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRefreshToken is returned for unknown, revoked or expired refresh tokens
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Actor is the authenticated user on whose behalf a service call runs
type Actor struct {
	UserID uint
	Role   models.Role
}

// ValidationError lists rejected input fields and why
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// fieldErrors collects field messages and yields nil when empty
type fieldErrors map[string]string

func (f fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
