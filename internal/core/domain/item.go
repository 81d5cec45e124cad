package domain

import "time"

// Item is a list entry owned by exactly one user. All reads and writes are
// scoped to the owner: another user's item behaves as if it did not exist.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	QuantityUnits *string   `json:"quantity_units,omitempty"`
	OwnerID       string    `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
