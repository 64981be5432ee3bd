package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// CarHandler maneja las peticiones HTTP para vehículos.
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar vehículo
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.Envelope{data=dto.CarResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
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
// @Summary      Obtener vehículo por ID
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.Envelope{data=dto.CarResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar vehículos
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por placa, cliente, marca o modelo"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño"  default(10)
// @Success      200     {object}  dto.Envelope{data=[]dto.CarResponse}
// @Router       /api/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	var pg dto.PageRequest
	if err := c.QueryParser(&pg); err != nil {
		return dto.NewValidationError("query", "parámetros inválidos")
	}
	pg.Normalize()
	items, total, err := h.uc.List(c.Context(), c.Query("search"), pg.Page, pg.Limit)
	if err != nil {
		return err
	}
	return respondPaged(c, items, pg.Page, pg.Limit, total)
}

// Update godoc
// @Summary      Actualizar vehículo
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.UpdateCarRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.CarResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCarRequest
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
// @Summary      Eliminar vehículo
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respondMessage(c, "vehículo eliminado")
}
