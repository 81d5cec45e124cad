package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/api/metrics"
)

// resolveExecuteSeed is public on purpose: the seed service itself refuses
// to run outside development, so gating it on a role would only get in the
// way of bootstrapping an empty database.
func (r *Resolver) resolveExecuteSeed(p graphql.ResolveParams) (interface{}, error) {
	ok, err := r.seed.Execute(p.Context)
	if err != nil {
		return nil, r.resolverError(err)
	}
	metrics.SeedRunsTotal.Inc()
	return ok, nil
}
