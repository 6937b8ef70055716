// Package common defines shared sentinel errors used across the catalog
// server and the CLI viewer. Callers should match these values with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth-specific errors.
	ErrorUserNotFound       = errors.New("user does not exist")
	ErrorInvalidCredentials = errors.New("incorrect password")
	ErrorLoginAlreadyExists = errors.New("username already exists")
	ErrInvalidToken         = errors.New("invalid token")

	// Query-input errors (surfaced as 4xx by the web layer).
	ErrorMissingParameter = errors.New("missing parameter")
	ErrorInvalidParameter = errors.New("invalid parameter")

	// Dataset bootstrap errors (fatal at startup).
	ErrorDatasetRead  = errors.New("dataset read error")
	ErrorDatasetParse = errors.New("dataset parse error")
)
