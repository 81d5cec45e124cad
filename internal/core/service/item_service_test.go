package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

func TestItemService_Create(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, zerolog.Nop())
	owner := &domain.User{ID: "u1", Roles: []domain.Role{domain.RoleUser}, IsActive: true}

	units := "kg"
	item, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Tomatoes", QuantityUnits: &units}, owner)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if item.OwnerID != owner.ID {
		t.Fatalf("expected owner %q, got %q", owner.ID, item.OwnerID)
	}
	if item.QuantityUnits == nil || *item.QuantityUnits != "kg" {
		t.Fatalf("unexpected quantity units: %v", item.QuantityUnits)
	}
}

func TestItemService_OwnerScoping(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, zerolog.Nop())
	alice := &domain.User{ID: "u1", IsActive: true}
	bob := &domain.User{ID: "u2", IsActive: true}

	item, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Rice"}, alice)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.FindByID(context.Background(), item.ID, bob.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for foreign owner, got %v", err)
	}
	if _, err := svc.FindByID(context.Background(), item.ID, alice.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	name := "Basmati Rice"
	if _, err := svc.Update(context.Background(), ports.UpdateItemInput{ID: item.ID, Name: &name}, bob.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on foreign update, got %v", err)
	}
	if _, err := svc.Remove(context.Background(), item.ID, bob.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on foreign remove, got %v", err)
	}
}

func TestItemService_Update(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, zerolog.Nop())
	owner := &domain.User{ID: "u1", IsActive: true}

	item, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Coffee"}, owner)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Coffee Beans"
	units := "g"
	updated, err := svc.Update(context.Background(), ports.UpdateItemInput{ID: item.ID, Name: &name, QuantityUnits: &units}, owner.ID)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Coffee Beans" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}
	if updated.QuantityUnits == nil || *updated.QuantityUnits != "g" {
		t.Fatalf("unexpected units: %v", updated.QuantityUnits)
	}
}

func TestItemService_Remove(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, zerolog.Nop())
	owner := &domain.User{ID: "u1", IsActive: true}

	item, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Sponges"}, owner)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	removed, err := svc.Remove(context.Background(), item.ID, owner.ID)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if removed.ID != item.ID || removed.Name != "Sponges" {
		t.Fatalf("expected last state of removed item, got %+v", removed)
	}
	if _, err := svc.FindByID(context.Background(), item.ID, owner.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected item to be gone, got %v", err)
	}
}

func TestItemService_FindAllAndCount(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, zerolog.Nop())
	alice := &domain.User{ID: "u1", IsActive: true}
	bob := &domain.User{ID: "u2", IsActive: true}

	for _, name := range []string{"Tomatoes", "Olive Oil", "Rice"} {
		if _, err := svc.Create(context.Background(), ports.CreateItemInput{Name: name}, alice); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Sponges"}, bob); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.FindAll(context.Background(), alice.ID, ports.ItemFilter{Limit: 10})
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 items for alice, got %d", len(mine))
	}

	oil, err := svc.FindAll(context.Background(), alice.ID, ports.ItemFilter{Limit: 10, Search: "oil"})
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(oil) != 1 || oil[0].Name != "Olive Oil" {
		t.Fatalf("unexpected search result: %+v", oil)
	}

	count, err := svc.CountByUser(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("CountByUser returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}
