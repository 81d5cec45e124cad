package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/api/authctx"
	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/service"
)

func newIdentityFixture(t *testing.T) (*Identity, *memUserRepo, *service.JWTCodec) {
	t.Helper()
	users := newMemUserRepo()
	codec := service.NewJWTCodec("test-secret", "anylist-api", time.Hour)
	return NewIdentity(service.NewAuthenticator(codec, users, zerolog.Nop())), users, codec
}

func TestIdentity_Require_BindsPrincipal(t *testing.T) {
	identity, users, codec := newIdentityFixture(t)

	id := uuid.NewString()
	if _, err := users.Create(context.Background(), &domain.User{
		ID:       id,
		Email:    "ada@example.com",
		Roles:    []domain.Role{domain.RoleAdmin},
		IsActive: true,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	token, err := codec.Issue(id)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	ctx := authctx.WithToken(context.Background(), token)
	boundCtx, principal, err := identity.Require(ctx, "users")
	if err != nil {
		t.Fatalf("Require returned error: %v", err)
	}
	if principal.ID != id {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if got := authctx.PrincipalFromContext(boundCtx); got == nil || got.ID != id {
		t.Fatalf("principal not bound into context")
	}
}

func TestIdentity_Require_UnknownOperationFailsClosed(t *testing.T) {
	identity, users, codec := newIdentityFixture(t)

	id := uuid.NewString()
	if _, err := users.Create(context.Background(), &domain.User{
		ID:       id,
		Email:    "ada@example.com",
		Roles:    []domain.Role{domain.RoleAdmin},
		IsActive: true,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	token, err := codec.Issue(id)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	ctx := authctx.WithToken(context.Background(), token)
	if _, _, err := identity.Require(ctx, "dropDatabase"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unlisted operation, got %v", err)
	}
}

func TestIdentity_Require_MissingToken(t *testing.T) {
	identity, _, _ := newIdentityFixture(t)

	if _, _, err := identity.Require(context.Background(), "items"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIdentity_Require_RoleMismatch(t *testing.T) {
	identity, users, codec := newIdentityFixture(t)

	id := uuid.NewString()
	if _, err := users.Create(context.Background(), &domain.User{
		ID:       id,
		Email:    "grace@example.com",
		Roles:    []domain.Role{domain.RoleUser},
		IsActive: true,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	token, err := codec.Issue(id)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	ctx := authctx.WithToken(context.Background(), token)
	if _, _, err := identity.Require(ctx, "updateUser"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
