package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// AuthService implements signup, login and token revalidation.
type AuthService struct {
	users    ports.UserRepository
	codec    ports.TokenCodec
	throttle ports.LoginThrottler // optional; nil disables throttling
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec ports.TokenCodec, throttle ports.LoginThrottler, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, throttle: throttle, log: log}
}

// Signup creates a user with the default role set and returns it with a
// fresh token. Signup never stamps lastUpdateBy: a freshly created user has
// no actor other than itself.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		Roles:        []domain.Role{domain.RoleUser},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login verifies credentials and issues a token. Unknown email, wrong
// password and deactivated account all fail with the same
// ErrInvalidCredentials so the response does not reveal which was wrong.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(input.Email)

	if s.throttle != nil {
		locked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			// Throttle backend down: log and let the attempt through rather
			// than locking everyone out.
			s.log.Warn().Err(err).Msg("login throttle unavailable")
		} else if locked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Revalidate issues a fresh token for an already authenticated principal.
func (s *AuthService) Revalidate(_ context.Context, user *domain.User) (*ports.AuthResult, error) {
	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
