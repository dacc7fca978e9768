// Package common defines shared constants and sentinel errors used across
// HydroHabit components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorUnauthorized covers both an unknown username and a wrong login
	// string; the two cases are deliberately indistinguishable.
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (missing/empty required input).
	ErrorValidation = errors.New("validation error")

	// Session state machine errors.
	ErrorNotAuthenticated     = errors.New("not authenticated")
	ErrorAlreadyAuthenticated = errors.New("already authenticated")

	// Session cookie errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Coach pipeline errors.
	ErrorUpstreamUnavailable = errors.New("upstream unavailable")
	ErrorGeneration          = errors.New("generation failed")
)
