// Package authctx carries request identity through context.Context: the raw
// bearer token on the way in (transport to resolvers) and the authenticated
// principal on the way down (identity check to handler logic). Both bindings
// live exactly as long as the request context that carries them.
package authctx

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

type tokenKey struct{}
type principalKey struct{}

// WithToken returns a context carrying the raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the raw bearer token, if one was presented.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// PrincipalFromContext returns the principal bound for this operation, or
// nil when no identity check has run.
func PrincipalFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(principalKey{}).(*domain.User)
	return user
}
