// Package common holds what the server, the web app and the CLI share:
// sentinel errors, cookie and header names, and small byte helpers.
package common

import "errors"

// Sentinels are matched with errors.Is; repositories and services wrap
// them, handlers map them to HTTP status codes.
var (
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// ErrorUnauthorized is a failed login; ErrorForbidden is a valid user
	// acting on someone else's record.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
