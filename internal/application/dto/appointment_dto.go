package dto

import "time"

// CreateAppointmentRequest entrada para agendar una cita.
type CreateAppointmentRequest struct {
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Vehicle       string    `json:"vehicle"`
	ServiceType   string    `json:"service_type"`
	PreferredDate time.Time `json:"preferred_date"`
}

// UpdateAppointmentRequest patch explícito por campo (nil = no tocar).
type UpdateAppointmentRequest struct {
	CustomerName  *string    `json:"customer_name"`
	CustomerEmail *string    `json:"customer_email"`
	Vehicle       *string    `json:"vehicle"`
	ServiceType   *string    `json:"service_type"`
	PreferredDate *time.Time `json:"preferred_date"`
	Status        *string    `json:"status"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Vehicle       string    `json:"vehicle"`
	ServiceType   string    `json:"service_type"`
	PreferredDate time.Time `json:"preferred_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
