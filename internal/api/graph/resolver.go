// Package graph exposes the API as a hand-written GraphQL schema. Resolvers
// are thin: they decode and validate arguments, run the per-operation
// identity check, call a core service, and map failures to coded errors.
package graph

import (
	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/core/ports"
)

// Resolver holds the services the schema resolves against.
type Resolver struct {
	identity *Identity
	auth     ports.AuthService
	users    ports.UserService
	items    ports.ItemService
	seed     ports.SeedService
	log      zerolog.Logger
}

func NewResolver(
	identity *Identity,
	auth ports.AuthService,
	users ports.UserService,
	items ports.ItemService,
	seed ports.SeedService,
	log zerolog.Logger,
) *Resolver {
	return &Resolver{
		identity: identity,
		auth:     auth,
		users:    users,
		items:    items,
		seed:     seed,
		log:      log,
	}
}
