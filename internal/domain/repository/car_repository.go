package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CarRepository acceso a vehículos en el document store.
// Los métodos Get* devuelven (nil, nil) cuando no existe el documento.
type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	GetByID(ctx context.Context, id string) (*entity.Car, error)
	GetByVIN(ctx context.Context, vin string) (*entity.Car, error)
	// List búsqueda por substring case-insensitive sobre placa, cliente,
	// marca y modelo (OR entre campos). Orden: más recientes primero.
	List(ctx context.Context, search string, page, limit int) ([]*entity.Car, int64, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id string) error
}
