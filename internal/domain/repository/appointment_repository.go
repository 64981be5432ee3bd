package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// AppointmentRepository acceso a citas en el document store.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	// List filtra opcionalmente por status (vacío = todos). Más recientes primero.
	List(ctx context.Context, status string, page, limit int) ([]*entity.Appointment, int64, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, id string) error
}
