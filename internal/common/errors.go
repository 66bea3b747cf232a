// Package common defines shared constants and sentinel errors used across
// client and server layers of the game catalog. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors; wrapped with the offending field.
	ErrorValidation = errors.New("validation error")

	// Registration / login errors.
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Access gate errors.
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")

	// Token errors (malformed, bad signature, expired).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
