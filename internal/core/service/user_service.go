package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// UserService implements user administration. Update and Block stamp the
// acting principal on the record before persisting; stamp and write reach
// the repository as a single save, so either both land or neither does.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) FindAll(ctx context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	return s.users.FindAll(ctx, filter)
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update to a user and records the actor.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput, actor *domain.User) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Roles != nil {
		if len(input.Roles) == 0 {
			return nil, domain.ErrLastRole
		}
		for _, r := range input.Roles {
			if !domain.ValidRole(r) {
				return nil, domain.ErrInvalidRole
			}
		}
		user.Roles = input.Roles
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	domain.Stamp(user, actor)
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", updated.ID).Str("actor_id", actor.ID).Msg("user updated")
	return updated, nil
}

// Block deactivates a user and records the actor. Tokens already issued to
// the blocked user stop working on their next request, since authentication
// reloads the principal every time.
func (s *UserService) Block(ctx context.Context, id string, actor *domain.User) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	domain.Stamp(user, actor)
	user.UpdatedAt = time.Now().UTC()

	blocked, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", blocked.ID).Str("actor_id", actor.ID).Msg("user blocked")
	return blocked, nil
}
