package graph

import (
	"context"
	"sort"
	"strings"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// In-memory repositories backing the schema tests.

type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	if u.LastUpdateByID != nil {
		id := *u.LastUpdateByID
		clone.LastUpdateByID = &id
	}
	return &clone
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindAll(_ context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	matched := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if len(filter.Roles) > 0 && !u.HasAnyRole(filter.Roles...) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.FullName), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *memUserRepo) DeleteAll(_ context.Context) error {
	r.users = make(map[string]*domain.User)
	return nil
}

type memItemRepo struct {
	items map[string]*domain.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*domain.Item)}
}

func cloneItem(i *domain.Item) *domain.Item {
	if i == nil {
		return nil
	}
	clone := *i
	if i.QuantityUnits != nil {
		units := *i.QuantityUnits
		clone.QuantityUnits = &units
	}
	return &clone
}

func (r *memItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *memItemRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, domain.ErrItemNotFound
	}
	return cloneItem(item), nil
}

func (r *memItemRepo) FindAllByOwner(_ context.Context, ownerID string, filter ports.ItemFilter) ([]*domain.Item, error) {
	matched := make([]*domain.Item, 0)
	for _, item := range r.items {
		if item.OwnerID != ownerID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, cloneItem(item))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memItemRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *memItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	stored, ok := r.items[item.ID]
	if !ok || stored.OwnerID != item.OwnerID {
		return nil, domain.ErrItemNotFound
	}
	r.items[item.ID] = cloneItem(item)
	return cloneItem(item), nil
}

func (r *memItemRepo) Delete(_ context.Context, id, ownerID string) error {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) DeleteAll(_ context.Context) error {
	r.items = make(map[string]*domain.Item)
	return nil
}
