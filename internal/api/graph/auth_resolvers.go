package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/api/metrics"
	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// resolveSignup handles the public signup mutation. Deliberately no
// identity check: self-registration is the one write anyone may perform.
func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	args, err := objectArg(p, "signupInput")
	if err != nil {
		return nil, err
	}
	in := signupInput{
		FullName: stringField(args, "fullName"),
		Email:    stringField(args, "email"),
		Password: stringField(args, "password"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	res, err := r.auth.Signup(p.Context, ports.SignupInput{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, r.resolverError(err)
	}
	return res, nil
}

// resolveLogin handles the public login mutation.
func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	args, err := objectArg(p, "loginInput")
	if err != nil {
		return nil, err
	}
	in := loginInput{
		Email:    stringField(args, "email"),
		Password: stringField(args, "password"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	res, err := r.auth.Login(p.Context, ports.LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return nil, r.resolverError(err)
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return res, nil
}

// resolveRevalidate re-issues a token for the authenticated caller.
func (r *Resolver) resolveRevalidate(p graphql.ResolveParams) (interface{}, error) {
	ctx, principal, err := r.identity.Require(p.Context, "revalidate")
	if err != nil {
		return nil, r.resolverError(err)
	}

	res, err := r.auth.Revalidate(ctx, principal)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return res, nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
