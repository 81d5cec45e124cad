package graph

import (
	"context"

	"github.com/anylist/anylist-api/internal/api/authctx"
	"github.com/anylist/anylist-api/internal/api/metrics"
	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
	"github.com/anylist/anylist-api/internal/core/service"
)

// policy maps every guarded operation and field to its required role set.
// An empty set means "any authenticated user". Identifiers absent from this
// table fail closed through Require. An operation is public only by never
// calling Require at all, which keeps the opt-out visible in its resolver
// (signup, login, executeSeed).
var policy = map[string][]domain.Role{
	// queries
	"revalidate": {},
	"users":      {domain.RoleAdmin, domain.RoleSuperUser},
	"user":       {domain.RoleAdmin, domain.RoleSuperUser},
	"items":      {},
	"item":       {},

	// mutations
	"updateUser": {domain.RoleAdmin},
	"blockUser":  {domain.RoleAdmin},
	"createItem": {},
	"updateItem": {},
	"removeItem": {},

	// guarded nested fields
	"User.lastUpdateBy": {},
	"User.itemCount":    {domain.RoleAdmin},
	"User.items":        {domain.RoleAdmin},
}

// Identity runs the per-operation identity check: bearer token out of the
// request context, authentication, then the role gate for the operation.
type Identity struct {
	authn ports.Authenticator
}

func NewIdentity(authn ports.Authenticator) *Identity {
	return &Identity{authn: authn}
}

// Require authenticates and authorizes the current caller for one operation
// or field. Nested fields call it again with their own identifier: the
// check always runs against the request's caller, never the parent entity's
// owner, and nothing is reused across requests.
//
// On success the principal is bound into the returned context for the rest
// of this operation's resolution and also returned directly.
func (i *Identity) Require(ctx context.Context, operation string) (context.Context, *domain.User, error) {
	required, known := policy[operation]
	if !known {
		// Misconfiguration: a guarded resolver with no policy entry. Deny.
		metrics.AuthDenialsTotal.WithLabelValues(operation, "forbidden").Inc()
		return ctx, nil, domain.ErrForbidden
	}

	token, ok := authctx.TokenFromContext(ctx)
	if !ok {
		metrics.AuthDenialsTotal.WithLabelValues(operation, "unauthenticated").Inc()
		return ctx, nil, domain.ErrUnauthenticated
	}

	principal, err := i.authn.Authenticate(ctx, token)
	if err != nil {
		metrics.AuthDenialsTotal.WithLabelValues(operation, "unauthenticated").Inc()
		return ctx, nil, err
	}

	if err := service.Authorize(principal, required...); err != nil {
		metrics.AuthDenialsTotal.WithLabelValues(operation, "forbidden").Inc()
		return ctx, nil, err
	}

	return authctx.WithPrincipal(ctx, principal), principal, nil
}
