package ports

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// ItemFilter narrows an item listing for a single owner.
type ItemFilter struct {
	Offset int
	Limit  int
	Search string // case-insensitive match against the item name
}

// ItemRepository defines the persistence contract for items. Every lookup is
// scoped by owner: an item belonging to someone else is reported as not found.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Item, error)
	FindAllByOwner(ctx context.Context, ownerID string, filter ItemFilter) ([]*domain.Item, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteAll(ctx context.Context) error
}
