package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/core/ports"
)

func (r *Resolver) resolveCreateItem(p graphql.ResolveParams) (interface{}, error) {
	ctx, owner, err := r.identity.Require(p.Context, "createItem")
	if err != nil {
		return nil, r.resolverError(err)
	}

	args, err := objectArg(p, "createItemInput")
	if err != nil {
		return nil, err
	}
	in := createItemInput{
		Name:          stringField(args, "name"),
		QuantityUnits: stringPtrField(args, "quantityUnits"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	item, err := r.items.Create(ctx, ports.CreateItemInput{
		Name:          in.Name,
		QuantityUnits: in.QuantityUnits,
	}, owner)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return item, nil
}

func (r *Resolver) resolveItems(p graphql.ResolveParams) (interface{}, error) {
	ctx, caller, err := r.identity.Require(p.Context, "items")
	if err != nil {
		return nil, r.resolverError(err)
	}

	items, err := r.items.FindAll(ctx, caller.ID, itemFilterArgs(p))
	if err != nil {
		return nil, r.resolverError(err)
	}
	return items, nil
}

func (r *Resolver) resolveItem(p graphql.ResolveParams) (interface{}, error) {
	ctx, caller, err := r.identity.Require(p.Context, "item")
	if err != nil {
		return nil, r.resolverError(err)
	}

	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	item, err := r.items.FindByID(ctx, id, caller.ID)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return item, nil
}

func (r *Resolver) resolveUpdateItem(p graphql.ResolveParams) (interface{}, error) {
	ctx, caller, err := r.identity.Require(p.Context, "updateItem")
	if err != nil {
		return nil, r.resolverError(err)
	}

	args, err := objectArg(p, "updateItemInput")
	if err != nil {
		return nil, err
	}
	in := updateItemInput{
		ID:            stringField(args, "id"),
		Name:          stringPtrField(args, "name"),
		QuantityUnits: stringPtrField(args, "quantityUnits"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	item, err := r.items.Update(ctx, ports.UpdateItemInput{
		ID:            in.ID,
		Name:          in.Name,
		QuantityUnits: in.QuantityUnits,
	}, caller.ID)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return item, nil
}

func (r *Resolver) resolveRemoveItem(p graphql.ResolveParams) (interface{}, error) {
	ctx, caller, err := r.identity.Require(p.Context, "removeItem")
	if err != nil {
		return nil, r.resolverError(err)
	}

	id, err := idArg(p)
	if err != nil {
		return nil, err
	}
	item, err := r.items.Remove(ctx, id, caller.ID)
	if err != nil {
		return nil, r.resolverError(err)
	}
	return item, nil
}

func itemFilterArgs(p graphql.ResolveParams) ports.ItemFilter {
	return ports.ItemFilter{
		Offset: intArg(p, "offset", 0),
		Limit:  intArg(p, "limit", 10),
		Search: stringArg(p, "search"),
	}
}
