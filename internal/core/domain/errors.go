package domain

import "errors"

// Token / identity failures. ErrInvalidToken is internal to the token codec
// and always surfaces to callers as ErrUnauthenticated; the two must never
// leak which specific check failed.
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")
)

// Credential and account failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Entity failures.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrLastRole     = errors.New("a user must keep at least one role")
	ErrInvalidRole  = errors.New("unknown role")
)

// ErrSeedDisabled is returned when the seed is invoked in production.
var ErrSeedDisabled = errors.New("seeding is disabled in this environment")
