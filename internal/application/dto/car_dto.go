package dto

import "time"

// CreateCarRequest entrada para registrar un vehículo.
type CreateCarRequest struct {
	LicensePlate  string `json:"license_plate"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Color         string `json:"color"`
	VIN           string `json:"vin"`
}

// UpdateCarRequest patch explícito por campo (nil = no tocar).
type UpdateCarRequest struct {
	LicensePlate  *string `json:"license_plate"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Make          *string `json:"make"`
	Model         *string `json:"model"`
	Year          *int    `json:"year"`
	Color         *string `json:"color"`
	VIN           *string `json:"vin"`
}

// CarResponse salida de un vehículo (el _id del storage se expone como id).
type CarResponse struct {
	ID            string    `json:"id"`
	LicensePlate  string    `json:"license_plate"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Color         string    `json:"color,omitempty"`
	VIN           string    `json:"vin,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
