package ports

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Nil pointers leave the
// corresponding field untouched; a non-nil Roles slice replaces the role set.
type UpdateUserInput struct {
	ID       string
	FullName *string
	Email    *string
	Password *string
	Roles    []domain.Role
	IsActive *bool
}

// UserService exposes user administration. Mutating operations take the
// acting principal and stamp it on the modified record before persistence.
type UserService interface {
	FindAll(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput, actor *domain.User) (*domain.User, error)
	Block(ctx context.Context, id string, actor *domain.User) (*domain.User, error)
}
