package dto

import "time"

// CreateMechanicRequest alta de un mecánico.
type CreateMechanicRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Experience   string   `json:"experience"`
}

// UpdateMechanicRequest patch explícito por campo (nil = no tocar).
type UpdateMechanicRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Skills       *[]string `json:"skills"`
	Availability *string   `json:"availability"`
	Experience   *string   `json:"experience"`
}

// MechanicResponse salida de un mecánico.
type MechanicResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Skills       []string  `json:"skills"`
	Availability string    `json:"availability"`
	Experience   string    `json:"experience,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
