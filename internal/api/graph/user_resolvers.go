package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	ctx, _, err := r.identity.Require(p.Context, "users")
	if err != nil {
		return nil, r.resolverError(err)
	}

	filter := ports.UserFilter{
		Roles:  rolesField(p.Args, "roles"),
		Offset: intArg(p, "offset", 0),
		Limit:  intArg(p, "limit", 10),
		Search: stringArg(p, "search"),
	}
	users, err := r.users.FindAll(ctx, filter)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return users, nil
}

func (r *Resolver) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	ctx, _, err := r.identity.Require(p.Context, "user")
	if err != nil {
		return nil, r.resolverError(err)
	}

	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return user, nil
}

func (r *Resolver) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	ctx, actor, err := r.identity.Require(p.Context, "updateUser")
	if err != nil {
		return nil, r.resolverError(err)
	}

	args, err := objectArg(p, "updateUserInput")
	if err != nil {
		return nil, err
	}
	in := updateUserInput{
		ID:       stringField(args, "id"),
		FullName: stringPtrField(args, "fullName"),
		Email:    stringPtrField(args, "email"),
		Password: stringPtrField(args, "password"),
		Roles:    rolesField(args, "roles"),
		IsActive: boolPtrField(args, "isActive"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	updated, err := r.users.Update(ctx, ports.UpdateUserInput{
		ID:       in.ID,
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
		Roles:    in.Roles,
		IsActive: in.IsActive,
	}, actor)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return updated, nil
}

func (r *Resolver) resolveBlockUser(p graphql.ResolveParams) (interface{}, error) {
	ctx, actor, err := r.identity.Require(p.Context, "blockUser")
	if err != nil {
		return nil, r.resolverError(err)
	}

	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	blocked, err := r.users.Block(ctx, id, actor)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return blocked, nil
}

// resolveLastUpdateBy lazily resolves the audit back-reference: one lookup
// by stored id, never an eagerly loaded object graph. A dangling reference
// (the actor was deleted since) resolves to null rather than an error.
func (r *Resolver) resolveLastUpdateBy(p graphql.ResolveParams) (interface{}, error) {
	ctx, _, err := r.identity.Require(p.Context, "User.lastUpdateBy")
	if err != nil {
		return nil, r.resolverError(err)
	}

	parent, err := userSource(p)
	if err != nil {
		return nil, err
	}
	if parent.LastUpdateByID == nil {
		return nil, nil
	}
	actor, err := r.users.FindByID(ctx, *parent.LastUpdateByID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, r.resolverError(err)
	}
	return actor, nil
}

// resolveItemCount is an admin-only field on an otherwise broader-visible
// type. The gate re-runs for the requesting caller; the parent user being
// read plays no part in the decision.
func (r *Resolver) resolveItemCount(p graphql.ResolveParams) (interface{}, error) {
	ctx, _, err := r.identity.Require(p.Context, "User.itemCount")
	if err != nil {
		return nil, r.resolverError(err)
	}

	parent, err := userSource(p)
	if err != nil {
		return nil, err
	}
	count, err := r.items.CountByUser(ctx, parent.ID)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return count, nil
}

// resolveUserItems lists the parent user's items, gated on the caller.
func (r *Resolver) resolveUserItems(p graphql.ResolveParams) (interface{}, error) {
	ctx, _, err := r.identity.Require(p.Context, "User.items")
	if err != nil {
		return nil, r.resolverError(err)
	}

	parent, err := userSource(p)
	if err != nil {
		return nil, err
	}
	items, err := r.items.FindAll(ctx, parent.ID, itemFilterArgs(p))
	if err != nil {
		return nil, r.resolverError(err)
	}
	return items, nil
}
