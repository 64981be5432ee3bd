package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// Cantidad mínima sugerida de reposición, aunque el múltiplo del umbral dé menos.
const minReorderQty = 5

// InventoryUseCase casos de uso de inventario: CRUD, descuento de stock
// (individual y por lotes) y agregaciones de solo lectura.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create da de alta un item. El SKU, si viene, debe ser único.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	var errs []dto.FieldError
	if in.Name == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "requerido"})
	}
	if in.Category == "" {
		errs = append(errs, dto.FieldError{Field: "category", Message: "requerida"})
	}
	if in.Quantity < 0 {
		errs = append(errs, dto.FieldError{Field: "quantity", Message: "no puede ser negativa"})
	}
	if in.UnitPrice < 0 {
		errs = append(errs, dto.FieldError{Field: "unit_price", Message: "no puede ser negativo"})
	}
	if in.MinThreshold < 0 {
		errs = append(errs, dto.FieldError{Field: "min_threshold", Message: "no puede ser negativo"})
	}
	if errs != nil {
		return nil, &dto.ValidationError{Fields: errs}
	}
	if in.SKU != "" {
		existing, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	item := &entity.InventoryItem{
		Name:     in.Name,
		Category: in.Category,
		Supplier: entity.Supplier{
			Name:    in.Supplier.Name,
			Contact: in.Supplier.Contact,
			Phone:   in.Supplier.Phone,
			Terms:   in.Supplier.Terms,
		},
		SKU:          in.SKU,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		MinThreshold: in.MinThreshold,
		LastUpdated:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(item), nil
}

// List lista items con búsqueda libre, filtro por categoría y paginación.
func (uc *InventoryUseCase) List(ctx context.Context, search, category string, page, limit int) ([]dto.InventoryItemResponse, int64, error) {
	items, total, err := uc.repo.List(ctx, search, category, page, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toInventoryItemResponse(it))
	}
	return out, total, nil
}

// Update actualización parcial: solo cambian los campos provistos.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Supplier != nil {
		item.Supplier = entity.Supplier{
			Name:    in.Supplier.Name,
			Contact: in.Supplier.Contact,
			Phone:   in.Supplier.Phone,
			Terms:   in.Supplier.Terms,
		}
	}
	if in.SKU != nil && *in.SKU != item.SKU {
		if *in.SKU != "" {
			existing, err := uc.repo.GetBySKU(ctx, *in.SKU)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		item.SKU = *in.SKU
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, dto.NewValidationError("quantity", "no puede ser negativa")
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.MinThreshold != nil {
		item.MinThreshold = *in.MinThreshold
	}
	now := time.Now()
	item.LastUpdated = now
	item.UpdatedAt = now
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina el item (solo owner por ruta).
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ReduceStock descuenta stock de forma atómica en el storage (decremento
// condicional: quantity >= qty). Dos peticiones concurrentes sobre el mismo
// item no pueden dejar la cantidad en negativo.
func (uc *InventoryUseCase) ReduceStock(ctx context.Context, id string, in dto.ReduceStockRequest) (*dto.InventoryItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, dto.NewValidationError("quantity", "debe ser mayor que cero")
	}
	updated, err := uc.repo.DecrementStock(ctx, id, in.Quantity)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return toInventoryItemResponse(updated), nil
	}
	// Ningún documento cumplió la condición: distinguir inexistente de
	// stock insuficiente (clasificación informativa, el decremento ya es atómico).
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// BulkReduceStock aplica ReduceStock por item continuando tras fallos
// individuales y devuelve el reporte particionado de éxitos y errores.
func (uc *InventoryUseCase) BulkReduceStock(ctx context.Context, in dto.BulkReduceStockRequest) (*dto.BulkReduceStockResponse, error) {
	if len(in.Items) == 0 {
		return nil, dto.NewValidationError("items", "lista vacía")
	}
	out := &dto.BulkReduceStockResponse{
		Processed: []dto.InventoryItemResponse{},
		Errors:    []dto.BulkReduceError{},
	}
	for _, line := range in.Items {
		resp, err := uc.ReduceStock(ctx, line.ID, dto.ReduceStockRequest{Quantity: line.Quantity, Reason: line.Reason})
		if err != nil {
			out.Errors = append(out.Errors, dto.BulkReduceError{ID: line.ID, Message: err.Error()})
			continue
		}
		out.Processed = append(out.Processed, *resp)
	}
	return out, nil
}

// Analytics agregación de solo lectura: clasifica el inventario completo en
// buckets out/low/good y calcula el valor total (quantity × unit_price).
func (uc *InventoryUseCase) Analytics(ctx context.Context) (*dto.InventoryAnalyticsResponse, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryAnalyticsResponse{TotalItems: len(items), TotalValue: decimal.Zero}
	for _, it := range items {
		value := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
		resp.TotalValue = resp.TotalValue.Add(value)
		switch it.StockStatus() {
		case entity.StockOut:
			resp.OutOfStock++
			resp.OutOfStockIDs = append(resp.OutOfStockIDs, it.ID.Hex())
		case entity.StockLow:
			resp.LowStock++
			resp.LowStockIDs = append(resp.LowStockIDs, it.ID.Hex())
		default:
			resp.InStock++
		}
	}
	return resp, nil
}

// ReorderSuggestions sugiere cantidades de reposición para los items en o
// bajo el umbral mínimo:
//   - agotado:     3 × min_threshold (prioridad 1)
//   - bajo umbral: 2 × min_threshold (prioridad 2)
//   - piso fijo:   nunca menos de minReorderQty unidades
//
// criticalOnly limita la lista a los items agotados. El orden es prioridad
// ascendente y, a igual prioridad, costo estimado descendente.
func (uc *InventoryUseCase) ReorderSuggestions(ctx context.Context, criticalOnly bool) ([]dto.ReorderSuggestionDTO, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReorderSuggestionDTO, 0)
	for _, it := range items {
		status := it.StockStatus()
		if status == entity.StockGood {
			continue
		}
		if criticalOnly && status != entity.StockOut {
			continue
		}
		qty := 2 * it.MinThreshold
		priority := 2
		if status == entity.StockOut {
			qty = 3 * it.MinThreshold
			priority = 1
		}
		if qty < minReorderQty {
			qty = minReorderQty
		}
		cost := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(qty))).Round(2)
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ItemID:        it.ID.Hex(),
			Name:          it.Name,
			SKU:           it.SKU,
			Quantity:      it.Quantity,
			MinThreshold:  it.MinThreshold,
			StockStatus:   status,
			SuggestedQty:  qty,
			UnitPrice:     it.UnitPrice,
			EstimatedCost: cost,
			Priority:      priority,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.EstimatedCost.GreaterThan(b.EstimatedCost)
	})
	return suggestions, nil
}

func toInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:       i.ID.Hex(),
		Name:     i.Name,
		Category: i.Category,
		Supplier: dto.SupplierDTO{
			Name:    i.Supplier.Name,
			Contact: i.Supplier.Contact,
			Phone:   i.Supplier.Phone,
			Terms:   i.Supplier.Terms,
		},
		SKU:          i.SKU,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		MinThreshold: i.MinThreshold,
		StockStatus:  i.StockStatus(),
		LastUpdated:  i.LastUpdated,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
