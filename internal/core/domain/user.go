package domain

import "time"

// Role is an access level tag. The set is closed: every user carries at
// least one of these, and authorization decisions are made purely over them.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleSuperUser Role = "super-user"
)

// ValidRole reports whether r belongs to the known role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSuperUser:
		return true
	}
	return false
}

// User models an authenticated actor (principal) in the system.
//
// LastUpdateByID is an audit back-reference: the id of the user that last
// mutated this record through an admin operation. It stays nil for users
// that were only ever created (signup or seed), and is resolved to a full
// User lazily by the API layer, never eagerly loaded.
type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Roles          []Role    `json:"roles"`
	IsActive       bool      `json:"is_active"`
	LastUpdateByID *string   `json:"last_update_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasAnyRole reports whether the user holds at least one of the required
// roles. An empty required set matches any user.
func (u *User) HasAnyRole(required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range u.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Auditable is implemented by entities that record the last acting principal.
type Auditable interface {
	SetLastUpdateBy(actorID string)
}

// SetLastUpdateBy implements Auditable.
func (u *User) SetLastUpdateBy(actorID string) {
	u.LastUpdateByID = &actorID
}

// Stamp records the acting principal on a mutated entity. Every mutating
// path must call it immediately before persistence; creation paths never do,
// so a nil back-reference keeps meaning "never modified by another actor".
func Stamp(entity Auditable, actor *User) {
	entity.SetLastUpdateBy(actor.ID)
}
