package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// seedItem inserta un item directamente en el fake y devuelve su ID hex.
func seedItem(t *testing.T, repo *fakeInventoryRepo, it *entity.InventoryItem) string {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), it))
	return it.ID.Hex()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_SKUDuplicado_RetornaErrDuplicate(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name: "Filtro de aceite", Category: "filtros", SKU: "FIL-001", Quantity: 10, UnitPrice: 8.5, MinThreshold: 3,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name: "Otro filtro", Category: "filtros", SKU: "FIL-001", Quantity: 5, UnitPrice: 9, MinThreshold: 2,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el SKU repetido debe rechazarse")
}

func TestInventoryCreate_CantidadNegativa_ErrorDeValidacion(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	_, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name: "Bujía", Category: "encendido", Quantity: -1,
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Fields[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReduceStock
// ──────────────────────────────────────────────────────────────────────────────

func TestReduceStock_Descuenta(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	id := seedItem(t, repo, &entity.InventoryItem{Name: "Pastillas de freno", Category: "frenos", Quantity: 10, MinThreshold: 4})

	resp, err := uc.ReduceStock(context.Background(), id, dto.ReduceStockRequest{Quantity: 3, Reason: "orden #42"})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Quantity)
	assert.Equal(t, entity.StockGood, resp.StockStatus)
}

func TestReduceStock_CruzaUmbral_EtiquetaLow(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	id := seedItem(t, repo, &entity.InventoryItem{Name: "Aceite 10W40", Category: "lubricantes", Quantity: 6, MinThreshold: 4})

	resp, err := uc.ReduceStock(context.Background(), id, dto.ReduceStockRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, entity.StockLow, resp.StockStatus, "3 <= umbral 4 debe etiquetar low")
}

// Stock insuficiente: la petición se rechaza completa, sin descuento parcial.
func TestReduceStock_Insuficiente_NoCambiaCantidad(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	id := seedItem(t, repo, &entity.InventoryItem{Name: "Correa", Category: "distribución", Quantity: 2, MinThreshold: 1})

	_, err := uc.ReduceStock(context.Background(), id, dto.ReduceStockRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity, "un descuento rechazado no debe tocar la cantidad")
}

func TestReduceStock_ItemInexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	_, err := uc.ReduceStock(context.Background(), "64f000000000000000000099", dto.ReduceStockRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReduceStock_CantidadCero_ErrorDeValidacion(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	_, err := uc.ReduceStock(context.Background(), "64f000000000000000000001", dto.ReduceStockRequest{Quantity: 0})
	var verr *dto.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkReduceStock
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo individual no aborta el lote: el reporte particiona éxitos y errores.
func TestBulkReduceStock_FalloParcial_ContinuaYReporta(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	okID := seedItem(t, repo, &entity.InventoryItem{Name: "Filtro de aire", Category: "filtros", Quantity: 10, MinThreshold: 2})
	poorID := seedItem(t, repo, &entity.InventoryItem{Name: "Amortiguador", Category: "suspensión", Quantity: 1, MinThreshold: 1})
	otherID := seedItem(t, repo, &entity.InventoryItem{Name: "Bombilla H7", Category: "luces", Quantity: 20, MinThreshold: 5})

	resp, err := uc.BulkReduceStock(context.Background(), dto.BulkReduceStockRequest{Items: []dto.BulkReduceItem{
		{ID: okID, Quantity: 4},
		{ID: poorID, Quantity: 3}, // insuficiente
		{ID: otherID, Quantity: 2},
	}})
	require.NoError(t, err)

	require.Len(t, resp.Processed, 2, "los items con stock deben procesarse aunque uno falle")
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, poorID, resp.Errors[0].ID)

	// El item que falló queda intacto; el posterior al fallo sí se descontó.
	poor, _ := repo.GetByID(context.Background(), poorID)
	assert.Equal(t, 1, poor.Quantity)
	other, _ := repo.GetByID(context.Background(), otherID)
	assert.Equal(t, 18, other.Quantity)
}

func TestBulkReduceStock_ListaVacia_ErrorDeValidacion(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	_, err := uc.BulkReduceStock(context.Background(), dto.BulkReduceStockRequest{})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Fields[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_BucketsYValorTotal(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	outID := seedItem(t, repo, &entity.InventoryItem{Name: "Radiador", Category: "refrigeración", Quantity: 0, UnitPrice: 120, MinThreshold: 1})
	lowID := seedItem(t, repo, &entity.InventoryItem{Name: "Anticongelante", Category: "refrigeración", Quantity: 2, UnitPrice: 15.5, MinThreshold: 3})
	seedItem(t, repo, &entity.InventoryItem{Name: "Limpiaparabrisas", Category: "accesorios", Quantity: 30, UnitPrice: 6, MinThreshold: 5})

	resp, err := uc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, 1, resp.OutOfStock)
	assert.Equal(t, 1, resp.LowStock)
	assert.Equal(t, 1, resp.InStock)
	assert.Equal(t, []string{outID}, resp.OutOfStockIDs)
	assert.Equal(t, []string{lowID}, resp.LowStockIDs)

	// 0*120 + 2*15.5 + 30*6 = 211
	assert.True(t, resp.TotalValue.Equal(decimal.NewFromInt(211)),
		"valor total esperado 211, fue %s", resp.TotalValue)
}

func TestAnalytics_InventarioVacio(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	resp, err := uc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalItems)
	assert.True(t, resp.TotalValue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ReorderSuggestions
// ──────────────────────────────────────────────────────────────────────────────

func TestReorderSuggestions_CantidadesYOrden(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	// Agotado: sugiere 3×umbral. Bajo umbral: 2×umbral. good no aparece.
	outID := seedItem(t, repo, &entity.InventoryItem{Name: "Disco de freno", Category: "frenos", Quantity: 0, UnitPrice: 45, MinThreshold: 4})
	lowCheapID := seedItem(t, repo, &entity.InventoryItem{Name: "Fusible", Category: "eléctrico", Quantity: 3, UnitPrice: 0.5, MinThreshold: 10})
	lowDearID := seedItem(t, repo, &entity.InventoryItem{Name: "Batería", Category: "eléctrico", Quantity: 1, UnitPrice: 90, MinThreshold: 2})
	seedItem(t, repo, &entity.InventoryItem{Name: "Aceite 5W30", Category: "lubricantes", Quantity: 40, UnitPrice: 12, MinThreshold: 5})

	suggestions, err := uc.ReorderSuggestions(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, suggestions, 3, "el item con stock good no debe sugerirse")

	// Prioridad 1 (agotados) primero; a igual prioridad, costo estimado descendente.
	assert.Equal(t, outID, suggestions[0].ItemID)
	assert.Equal(t, 1, suggestions[0].Priority)
	assert.Equal(t, 12, suggestions[0].SuggestedQty, "agotado: 3 × umbral 4")
	assert.True(t, suggestions[0].EstimatedCost.Equal(decimal.NewFromInt(540)))

	// Batería (2×2=4 → piso 5, 5×90=450) antes que Fusible (2×10=20, 20×0.5=10).
	assert.Equal(t, lowDearID, suggestions[1].ItemID)
	assert.Equal(t, 2, suggestions[1].Priority)
	assert.Equal(t, 5, suggestions[1].SuggestedQty, "el piso de reposición es 5 unidades")
	assert.True(t, suggestions[1].EstimatedCost.Equal(decimal.NewFromInt(450)))

	assert.Equal(t, lowCheapID, suggestions[2].ItemID)
	assert.Equal(t, 20, suggestions[2].SuggestedQty, "bajo umbral: 2 × umbral 10")
}

// critical=true limita a los agotados; los low quedan fuera.
func TestReorderSuggestions_SoloCriticos(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	outID := seedItem(t, repo, &entity.InventoryItem{Name: "Termostato", Category: "refrigeración", Quantity: 0, UnitPrice: 25, MinThreshold: 2})
	seedItem(t, repo, &entity.InventoryItem{Name: "Manguera", Category: "refrigeración", Quantity: 1, UnitPrice: 8, MinThreshold: 3})

	suggestions, err := uc.ReorderSuggestions(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, outID, suggestions[0].ItemID)
	assert.Equal(t, entity.StockOut, suggestions[0].StockStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUpdate_ParcheParcial_NoTocaElResto(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)
	id := seedItem(t, repo, &entity.InventoryItem{
		Name: "Embrague", Category: "transmisión", SKU: "EMB-010",
		Quantity: 4, UnitPrice: 210, MinThreshold: 1,
	})

	newPrice := 225.0
	resp, err := uc.Update(context.Background(), id, dto.UpdateInventoryItemRequest{UnitPrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 225.0, resp.UnitPrice)
	assert.Equal(t, "Embrague", resp.Name, "los campos no provistos deben conservarse")
	assert.Equal(t, "EMB-010", resp.SKU)
	assert.Equal(t, 4, resp.Quantity)
}
