package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// NewSchema builds the executable schema over the given resolver. The schema
// is written by hand: types first, then the query and mutation roots wiring
// every field to a resolver method.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	validRoles := graphql.NewEnum(graphql.EnumConfig{
		Name:        "ValidRoles",
		Description: "Access levels: admin grants full control, superUser grants elevated rights without full management, user is the standard level.",
		Values: graphql.EnumValueConfigMap{
			"admin":     &graphql.EnumValueConfig{Value: domain.RoleAdmin},
			"user":      &graphql.EnumValueConfig{Value: domain.RoleUser},
			"superUser": &graphql.EnumValueConfig{Value: domain.RoleSuperUser},
		},
	})

	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, err := itemSource(p)
					if err != nil {
						return nil, err
					}
					return item.ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, err := itemSource(p)
					if err != nil {
						return nil, err
					}
					return item.Name, nil
				},
			},
			"quantityUnits": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, err := itemSource(p)
					if err != nil {
						return nil, err
					}
					if item.QuantityUnits == nil {
						return nil, nil
					}
					return *item.QuantityUnits, nil
				},
			},
			"ownerId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					item, err := itemSource(p)
					if err != nil {
						return nil, err
					}
					return item.OwnerID, nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return user.ID, nil
				},
			},
			"fullName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return user.FullName, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return user.Email, nil
				},
			},
			"roles": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(validRoles))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return user.Roles, nil
				},
			},
			"isActive": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return user.IsActive, nil
				},
			},
			"itemCount": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: r.resolveItemCount,
			},
		},
	})

	// Self-referential and cross-type fields are attached after construction.
	userType.AddFieldConfig("lastUpdateBy", &graphql.Field{
		Type:    userType,
		Resolve: r.resolveLastUpdateBy,
	})
	userType.AddFieldConfig("items", &graphql.Field{
		Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
		Args:    paginationArgs(),
		Resolve: r.resolveUserItems,
	})

	authResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthResponse",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, err := authResultSource(p)
					if err != nil {
						return nil, err
					}
					return res.Token, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, err := authResultSource(p)
					if err != nil {
						return nil, err
					}
					return res.User, nil
				},
			},
		},
	})

	signupInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignupInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"fullName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	loginInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateUserInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"fullName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"roles":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(validRoles))},
			"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	createItemInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"quantityUnits": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateItemInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"quantityUnits": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"revalidate": &graphql.Field{
				Type:    graphql.NewNonNull(authResponseType),
				Resolve: r.resolveRevalidate,
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Args: withPagination(graphql.FieldConfigArgument{
					"roles": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(validRoles))},
				}),
				Resolve: r.resolveUsers,
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveUser,
			},
			"items": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
				Args:    paginationArgs(),
				Resolve: r.resolveItems,
			},
			"item": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveItem,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authResponseType),
				Args: graphql.FieldConfigArgument{
					"signupInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInputType)},
				},
				Resolve: r.resolveSignup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authResponseType),
				Args: graphql.FieldConfigArgument{
					"loginInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: r.resolveLogin,
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"updateUserInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInputType)},
				},
				Resolve: r.resolveUpdateUser,
			},
			"blockUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveBlockUser,
			},
			"createItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"createItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createItemInputType)},
				},
				Resolve: r.resolveCreateItem,
			},
			"updateItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"updateItemInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateItemInputType)},
				},
				Resolve: r.resolveUpdateItem,
			},
			"removeItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveRemoveItem,
			},
			"executeSeed": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.resolveExecuteSeed,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func paginationArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
		"search": &graphql.ArgumentConfig{Type: graphql.String},
	}
}

func withPagination(args graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	for name, arg := range paginationArgs() {
		args[name] = arg
	}
	return args
}

// --- Source extraction ---

func userSource(p graphql.ResolveParams) (*domain.User, error) {
	user, ok := p.Source.(*domain.User)
	if !ok {
		return nil, &gqlError{message: "internal server error", code: codeInternal}
	}
	return user, nil
}

func itemSource(p graphql.ResolveParams) (*domain.Item, error) {
	item, ok := p.Source.(*domain.Item)
	if !ok {
		return nil, &gqlError{message: "internal server error", code: codeInternal}
	}
	return item, nil
}

func authResultSource(p graphql.ResolveParams) (*ports.AuthResult, error) {
	res, ok := p.Source.(*ports.AuthResult)
	if !ok {
		return nil, &gqlError{message: "internal server error", code: codeInternal}
	}
	return res, nil
}
