package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Handlers map these onto HTTP
// status codes; repositories and services wrap them with context via %w.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

// Unauthorized covers both "not yours" and "does not exist" on mutation
// paths, so callers cannot probe for other users' private posts.
func Unauthorized(what string) error {
	return fmt.Errorf("%s: %w", what, ErrUnauthorized)
}

func Validation(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrValidation)
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
