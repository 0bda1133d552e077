// Package common defines shared constants and sentinel errors used across
// the store, service and transport layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorValidation    = errors.New("validation error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorForbidden     = errors.New("forbidden")
	ErrorUnknownAuthor = errors.New("unknown author")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
