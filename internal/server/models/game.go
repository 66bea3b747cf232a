// Package models holds the server-side records shared by repositories,
// services and the HTTP layer.
package models

import "time"

// Game is a catalog entry.
type Game struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Space       float64   `json:"space"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GamePatch carries a partial update. Nil fields are left unchanged.
type GamePatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Space       *float64 `json:"space"`
	Description *string  `json:"description"`
	Genre       *string  `json:"genre"`
}

// IsEmpty reports whether the patch changes nothing.
func (p GamePatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Space == nil && p.Description == nil && p.Genre == nil
}
