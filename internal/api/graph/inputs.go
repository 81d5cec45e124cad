package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"

	"github.com/anylist/anylist-api/internal/core/domain"
)

var validate = validator.New()

// Input shapes, validated before any service call.

type signupInput struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type updateUserInput struct {
	ID       string  `validate:"required,uuid4"`
	FullName *string `validate:"omitempty,min=2"`
	Email    *string `validate:"omitempty,email"`
	Password *string `validate:"omitempty,min=6"`
	Roles    []domain.Role
	IsActive *bool
}

type createItemInput struct {
	Name          string `validate:"required,min=1"`
	QuantityUnits *string
}

type updateItemInput struct {
	ID            string  `validate:"required,uuid4"`
	Name          *string `validate:"omitempty,min=1"`
	QuantityUnits *string
}

// validateInput runs struct validation and flattens failures into a single
// BAD_USER_INPUT error with readable field messages.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return inputError(strings.Join(msgs, "; "))
	}
	return inputError(err.Error())
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "uuid4":
		return field + " must be a valid uuid"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// --- Argument decoding helpers ---
//
// graphql-go hands input objects to resolvers as map[string]interface{} with
// values already coerced by the schema; these helpers only reshape them.

func objectArg(p graphql.ResolveParams, key string) (map[string]interface{}, error) {
	m, ok := p.Args[key].(map[string]interface{})
	if !ok {
		return nil, inputError(key + " is required")
	}
	return m, nil
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringPtrField(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func boolPtrField(m map[string]interface{}, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

func rolesField(m map[string]interface{}, key string) []domain.Role {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]domain.Role, 0, len(raw))
	for _, v := range raw {
		switch r := v.(type) {
		case domain.Role:
			roles = append(roles, r)
		case string:
			roles = append(roles, domain.Role(r))
		}
	}
	return roles
}

func idArg(p graphql.ResolveParams) (string, error) {
	id, _ := p.Args["id"].(string)
	if err := validate.Var(id, "required,uuid4"); err != nil {
		return "", inputError("id must be a valid uuid")
	}
	return id, nil
}

func intArg(p graphql.ResolveParams, key string, def int) int {
	if v, ok := p.Args[key].(int); ok {
		return v
	}
	return def
}

func stringArg(p graphql.ResolveParams, key string) string {
	s, _ := p.Args[key].(string)
	return s
}
