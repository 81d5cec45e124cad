package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// ItemService implements owner-scoped item CRUD.
type ItemService struct {
	items ports.ItemRepository
	log   zerolog.Logger
}

func NewItemService(items ports.ItemRepository, log zerolog.Logger) *ItemService {
	return &ItemService{items: items, log: log}
}

func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput, owner *domain.User) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		ID:            uuid.NewString(),
		Name:          input.Name,
		QuantityUnits: input.QuantityUnits,
		OwnerID:       owner.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.items.Create(ctx, item)
}

func (s *ItemService) FindAll(ctx context.Context, ownerID string, filter ports.ItemFilter) ([]*domain.Item, error) {
	return s.items.FindAllByOwner(ctx, ownerID, filter)
}

func (s *ItemService) FindByID(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	return s.items.FindByID(ctx, id, ownerID)
}

func (s *ItemService) Update(ctx context.Context, input ports.UpdateItemInput, ownerID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, input.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.QuantityUnits != nil {
		item.QuantityUnits = input.QuantityUnits
	}
	item.UpdatedAt = time.Now().UTC()

	return s.items.Update(ctx, item)
}

// Remove deletes an item and returns its last state.
func (s *ItemService) Remove(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, id, ownerID); err != nil {
		return nil, err
	}
	s.log.Info().Str("item_id", id).Str("owner_id", ownerID).Msg("item removed")
	return item, nil
}

func (s *ItemService) CountByUser(ctx context.Context, userID string) (int, error) {
	return s.items.CountByOwner(ctx, userID)
}
