package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// MechanicRepository acceso a mecánicos en el document store.
type MechanicRepository interface {
	Create(ctx context.Context, m *entity.Mechanic) error
	GetByID(ctx context.Context, id string) (*entity.Mechanic, error)
	GetByEmail(ctx context.Context, email string) (*entity.Mechanic, error)
	// List búsqueda por substring case-insensitive sobre nombre, email y
	// skills, con filtro opcional por disponibilidad.
	List(ctx context.Context, search, availability string, page, limit int) ([]*entity.Mechanic, int64, error)
	Update(ctx context.Context, m *entity.Mechanic) error
	Delete(ctx context.Context, id string) error
}
