// Package common defines shared constants and sentinel errors used across
// the layers of critterkeep. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service-level errors (generic/internal flow control)
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorValidation         = errors.New("validation error")

	// ErrorNotOwned covers both a missing catch record and a record owned by
	// another user. Release must not reveal which of the two happened.
	ErrorNotOwned = errors.New("record not found or not owned")

	// auth errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// external catalog errors
	ErrCreatureNotFound   = errors.New("creature not found in catalog")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
