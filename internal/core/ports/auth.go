package ports

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// TokenCodec signs and verifies compact bearer tokens carrying a principal id.
type TokenCodec interface {
	// Issue produces a signed, time-bounded token for the given principal id.
	Issue(principalID string) (string, error)
	// Verify returns the embedded principal id, or domain.ErrInvalidToken for
	// any malformed, tampered, or expired token (uniformly, no distinction).
	Verify(token string) (string, error)
}

// Authenticator resolves a bearer token to an active principal. Every
// failure mode surfaces as domain.ErrUnauthenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// LoginThrottler limits repeated failed logins per account.
type LoginThrottler interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// SignupInput carries the fields of a self-registration.
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult pairs a freshly issued token with its principal.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements signup, login and token revalidation.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Revalidate(ctx context.Context, user *domain.User) (*AuthResult, error)
}
