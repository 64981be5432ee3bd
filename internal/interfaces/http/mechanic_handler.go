package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// MechanicHandler maneja las peticiones HTTP para mecánicos.
type MechanicHandler struct {
	uc *usecase.MechanicUseCase
}

// NewMechanicHandler construye el handler.
func NewMechanicHandler(uc *usecase.MechanicUseCase) *MechanicHandler {
	return &MechanicHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un mecánico
// @Tags         mechanics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMechanicRequest  true  "Datos del mecánico"
// @Success      201   {object}  dto.Envelope{data=dto.MechanicResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/mechanics [post]
func (h *MechanicHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMechanicRequest
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
// @Summary      Obtener mecánico por ID
// @Tags         mechanics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mecánico"
// @Success      200  {object}  dto.Envelope{data=dto.MechanicResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/mechanics/{id} [get]
func (h *MechanicHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar mecánicos
// @Tags         mechanics
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Búsqueda por nombre, email o habilidades"
// @Param        availability  query  string  false  "available | busy | unavailable"
// @Param        page          query  int     false  "Página"  default(1)
// @Param        limit         query  int     false  "Tamaño"  default(10)
// @Success      200           {object}  dto.Envelope{data=[]dto.MechanicResponse}
// @Router       /api/mechanics [get]
func (h *MechanicHandler) List(c *fiber.Ctx) error {
	var pg dto.PageRequest
	if err := c.QueryParser(&pg); err != nil {
		return dto.NewValidationError("query", "parámetros inválidos")
	}
	pg.Normalize()
	items, total, err := h.uc.List(c.Context(), c.Query("search"), c.Query("availability"), pg.Page, pg.Limit)
	if err != nil {
		return err
	}
	return respondPaged(c, items, pg.Page, pg.Limit, total)
}

// Update godoc
// @Summary      Actualizar mecánico
// @Tags         mechanics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mecánico"
// @Param        body  body  dto.UpdateMechanicRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.MechanicResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/mechanics/{id} [put]
func (h *MechanicHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMechanicRequest
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
// @Summary      Eliminar mecánico
// @Tags         mechanics
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mecánico"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/mechanics/{id} [delete]
func (h *MechanicHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respondMessage(c, "mecánico eliminado")
}
