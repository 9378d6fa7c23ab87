// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrNotFound is returned when no matching row exists.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing or unresolvable session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden signals a valid session lacking permission.
	ErrForbidden = errors.New("forbidden")
)
