package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// InventoryRepository acceso a items de inventario en el document store.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	// List búsqueda por substring case-insensitive sobre nombre, categoría,
	// proveedor y SKU (OR entre campos), con filtro opcional por categoría.
	List(ctx context.Context, search, category string, page, limit int) ([]*entity.InventoryItem, int64, error)
	// ListAll devuelve todos los items (para analítica y reportes).
	ListAll(ctx context.Context) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	// DecrementStock decremento condicional atómico: solo aplica si
	// quantity >= qty. Devuelve el item actualizado, o (nil, nil) si ningún
	// documento cumplió la condición (no existe o stock insuficiente).
	DecrementStock(ctx context.Context, id string, qty int) (*entity.InventoryItem, error)
}
