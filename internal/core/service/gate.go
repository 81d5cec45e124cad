package service

import "github.com/anylist/anylist-api/internal/core/domain"

// Authorize is the single allow/deny decision over a principal's roles.
//
// An empty required set passes any authenticated principal. Otherwise the
// principal passes iff it holds at least one of the required roles (OR
// semantics, not AND). Pure and stateless: no I/O, no shared state.
//
// The failure is domain.ErrForbidden (identity established, privilege
// insufficient) and must stay distinguishable from ErrUnauthenticated.
func Authorize(principal *domain.User, required ...domain.Role) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}
	if !principal.HasAnyRole(required...) {
		return domain.ErrForbidden
	}
	return nil
}
