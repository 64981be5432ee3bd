package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para el inventario del taller.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear item de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return dto.NewValidationError("body", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Búsqueda por nombre, categoría, proveedor o SKU"
// @Param        category  query  string  false  "Filtro por categoría exacta"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Tamaño"  default(10)
// @Success      200       {object}  dto.Envelope{data=[]dto.InventoryItemResponse}
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var pg dto.PageRequest
	if err := c.QueryParser(&pg); err != nil {
		return dto.NewValidationError("query", "parámetros inválidos")
	}
	pg.Normalize()
	items, total, err := h.uc.List(c.Context(), c.Query("search"), c.Query("category"), pg.Page, pg.Limit)
	if err != nil {
		return err
	}
	return respondPaged(c, items, pg.Page, pg.Limit, total)
}

// Update godoc
// @Summary      Actualizar item de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return dto.NewValidationError("body", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar item de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respondMessage(c, "item eliminado")
}

// ReduceStock godoc
// @Summary      Descontar stock de un item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.ReduceStockRequest  true  "quantity > 0, reason opcional"
// @Success      200   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope  "stock insuficiente"
// @Router       /api/inventory/{id}/reduce-stock [post]
func (h *InventoryHandler) ReduceStock(c *fiber.Ctx) error {
	var in dto.ReduceStockRequest
	if err := c.BodyParser(&in); err != nil {
		return dto.NewValidationError("body", "cuerpo inválido")
	}
	out, err := h.uc.ReduceStock(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// BulkReduceStock godoc
// @Summary      Descontar stock por lotes
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkReduceStockRequest  true  "Lista de descuentos"
// @Success      200   {object}  dto.Envelope{data=dto.BulkReduceStockResponse}
// @Router       /api/inventory/bulk-reduce [post]
func (h *InventoryHandler) BulkReduceStock(c *fiber.Ctx) error {
	var in dto.BulkReduceStockRequest
	if err := c.BodyParser(&in); err != nil {
		return dto.NewValidationError("body", "cuerpo inválido")
	}
	out, err := h.uc.BulkReduceStock(c.Context(), in)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Analytics godoc
// @Summary      Métricas agregadas del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.InventoryAnalyticsResponse}
// @Router       /api/inventory/analytics [get]
func (h *InventoryHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.Context())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// ReorderSuggestions godoc
// @Summary      Sugerencias de reposición
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        critical  query  string  false  "critical=true limita a items agotados (comparación exacta)"
// @Success      200       {object}  dto.Envelope{data=[]dto.ReorderSuggestionDTO}
// @Router       /api/inventory/reorder-suggestions [get]
func (h *InventoryHandler) ReorderSuggestions(c *fiber.Ctx) error {
	// Comparación exacta con "true": cualquier otro valor se ignora.
	criticalOnly := c.Query("critical") == "true"
	out, err := h.uc.ReorderSuggestions(c.Context(), criticalOnly)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}
