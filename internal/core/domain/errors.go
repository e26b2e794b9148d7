package domain

import "errors"

// Sentinel errors shared across services and the HTTP boundary. The central
// error handler maps each to a stable status code; anything outside this set
// surfaces as a generic internal failure.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")

	ErrInvalidID    = errors.New("invalid identifier")
	ErrEmptyUpdate  = errors.New("nothing to update")
	ErrInvalidInput = errors.New("invalid input")
)
