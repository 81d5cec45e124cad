package graph

import (
	"errors"

	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// Machine-readable error kinds, carried in the extensions payload of every
// resolver error. Clients branch on the code; messages are for humans.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeForbidden       = "FORBIDDEN"
	codeNotFound        = "NOT_FOUND"
	codeConflict        = "CONFLICT"
	codeBadUserInput    = "BAD_USER_INPUT"
	codeRateLimited     = "RATE_LIMITED"
	codeInternal        = "INTERNAL_SERVER_ERROR"
)

// gqlError is a resolver error with a stable code in extensions.
type gqlError struct {
	message string
	code    string
}

var _ gqlerrors.ExtendedError = (*gqlError)(nil)

func (e *gqlError) Error() string { return e.message }

func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func inputError(msg string) error {
	return &gqlError{message: msg, code: codeBadUserInput}
}

// resolverError maps a failure to its public form. Known domain errors keep
// a deterministic code; anything else is logged server-side and surfaces as
// an opaque internal error, leaking no detail to the client.
func (r *Resolver) resolverError(err error) error {
	var ge *gqlError
	if errors.As(err, &ge) {
		return ge
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return &gqlError{message: "unauthenticated", code: codeUnauthenticated}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &gqlError{message: "invalid credentials", code: codeUnauthenticated}
	case errors.Is(err, domain.ErrForbidden):
		return &gqlError{message: "access forbidden", code: codeForbidden}
	case errors.Is(err, domain.ErrSeedDisabled):
		return &gqlError{message: err.Error(), code: codeForbidden}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return &gqlError{message: err.Error(), code: codeRateLimited}
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrItemNotFound):
		return &gqlError{message: err.Error(), code: codeNotFound}
	case errors.Is(err, domain.ErrEmailTaken):
		return &gqlError{message: err.Error(), code: codeConflict}
	case errors.Is(err, domain.ErrLastRole), errors.Is(err, domain.ErrInvalidRole):
		return &gqlError{message: err.Error(), code: codeBadUserInput}
	}

	r.log.Error().Err(err).Msg("unhandled resolver error")
	return &gqlError{message: "internal server error", code: codeInternal}
}
