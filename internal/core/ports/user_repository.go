package ports

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// UserFilter narrows a user listing. A nil/empty Roles slice matches every
// user; a non-empty slice matches users whose role set intersects it.
type UserFilter struct {
	Roles  []domain.Role
	Offset int
	Limit  int
	Search string // case-insensitive match against full name
}

// UserRepository defines the persistence contract for users (principals).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteAll(ctx context.Context) error
}
