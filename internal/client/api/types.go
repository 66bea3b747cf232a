package api

import "time"

// User is the public identity returned by registration.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

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

// GameFields is the body of create and update requests. Nil fields are
// omitted, which on update means "leave unchanged".
type GameFields struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Space       *float64 `json:"space,omitempty"`
	Description *string  `json:"description,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
}
