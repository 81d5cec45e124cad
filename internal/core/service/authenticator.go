package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// Authenticator resolves a bearer token to an active principal.
//
// Read-only: it never writes, and its result must not be reused across
// requests. The caller cannot distinguish a bad token from a vanished or
// deactivated user; every rejection is ErrUnauthenticated.
type Authenticator struct {
	codec ports.TokenCodec
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthenticator(codec ports.TokenCodec, users ports.UserRepository, log zerolog.Logger) *Authenticator {
	return &Authenticator{codec: codec, users: users, log: log}
}

// Authenticate verifies the token, loads its principal and rejects inactive
// accounts.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	principalID, err := a.codec.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := a.users.FindByID(ctx, principalID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			// Store failure, not an identity decision. Still deny, but keep
			// the real cause in the server log.
			a.log.Error().Err(err).Str("user_id", principalID).Msg("principal lookup failed")
		}
		return nil, domain.ErrUnauthenticated
	}

	if !user.IsActive {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
