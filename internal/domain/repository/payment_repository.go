package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// PaymentRepository acceso a pagos en el document store.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	// List filtra opcionalmente por status y método. Más recientes primero.
	List(ctx context.Context, status, method string, page, limit int) ([]*entity.Payment, int64, error)
	Update(ctx context.Context, p *entity.Payment) error
	Delete(ctx context.Context, id string) error
}
