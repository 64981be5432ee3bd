package dto

import "time"

// JobTaskDTO tarea dentro de una orden de trabajo.
type JobTaskDTO struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateJobRequest entrada para crear una orden de trabajo. Al menos una de
// CarID/AppointmentID es obligatoria; si viene AppointmentID la creación es
// un upsert (idempotente por cita).
type CreateJobRequest struct {
	CarID               string       `json:"car"`
	AppointmentID       string       `json:"appointment"`
	Mechanic            string       `json:"mechanic"`
	Tasks               []JobTaskDTO `json:"tasks"`
	Status              string       `json:"status"`
	EstimatedCompletion time.Time    `json:"estimated_completion"`
	CustomerPhone       string       `json:"customer_phone"`
}

// UpdateJobRequest patch explícito por campo (nil = no tocar).
type UpdateJobRequest struct {
	CarID               *string       `json:"car"`
	AppointmentID       *string       `json:"appointment"`
	Mechanic            *string       `json:"mechanic"`
	Tasks               *[]JobTaskDTO `json:"tasks"`
	Status              *string       `json:"status"`
	EstimatedCompletion *time.Time    `json:"estimated_completion"`
	CustomerPhone       *string       `json:"customer_phone"`
}

// JobResponse salida de una orden de trabajo.
type JobResponse struct {
	ID                  string       `json:"id"`
	CarID               string       `json:"car,omitempty"`
	AppointmentID       string       `json:"appointment,omitempty"`
	Mechanic            string       `json:"mechanic"`
	Tasks               []JobTaskDTO `json:"tasks"`
	Status              string       `json:"status"`
	EstimatedCompletion time.Time    `json:"estimated_completion,omitempty"`
	CustomerPhone       string       `json:"customer_phone,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// ListJobsQuery parámetros de listado: la identidad viaja junto a la
// paginación para aplicar el scoping de rol customer en el storage.
type ListJobsQuery struct {
	Page   int
	Limit  int
	Status string
	// Identidad del solicitante (del token). Con Role == customer el listado
	// se restringe a los jobs cuyo Car enlazado tiene su email.
	Role  string
	Email string
}
