package ports

import (
	"context"

	"github.com/anylist/anylist-api/internal/core/domain"
)

// CreateItemInput carries the fields of a new item.
type CreateItemInput struct {
	Name          string
	QuantityUnits *string
}

// UpdateItemInput carries a partial item update.
type UpdateItemInput struct {
	ID            string
	Name          *string
	QuantityUnits *string
}

// ItemService exposes owner-scoped item CRUD. The owner parameter is always
// the entity owner being read or written; callers enforce who may act first.
type ItemService interface {
	Create(ctx context.Context, input CreateItemInput, owner *domain.User) (*domain.Item, error)
	FindAll(ctx context.Context, ownerID string, filter ItemFilter) ([]*domain.Item, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Item, error)
	Update(ctx context.Context, input UpdateItemInput, ownerID string) (*domain.Item, error)
	Remove(ctx context.Context, id, ownerID string) (*domain.Item, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
