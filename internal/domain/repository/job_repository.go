package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// JobRepository acceso a órdenes de trabajo en el document store.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (*entity.Job, error)
	// List filtra opcionalmente por status. Más recientes primero.
	List(ctx context.Context, status string, page, limit int) ([]*entity.Job, int64, error)
	// ListByCustomerEmail lista solo los jobs cuyo Car enlazado pertenece al
	// email dado. El join, el filtro y la paginación ocurren en el storage
	// (pipeline de agregación), no en memoria.
	ListByCustomerEmail(ctx context.Context, email, status string, page, limit int) ([]*entity.Job, int64, error)
	// UpsertByAppointment inserta o actualiza el Job asociado a la cita
	// (índice único sobre appointment_id: como máximo un Job por cita).
	UpsertByAppointment(ctx context.Context, job *entity.Job) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id string) error
}
