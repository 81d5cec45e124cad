package ports

import "context"

// SeedService wipes and reloads the database with fixture data. Refused
// outside development environments.
type SeedService interface {
	Execute(ctx context.Context) (bool, error)
}
