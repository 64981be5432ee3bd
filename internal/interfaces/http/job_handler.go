package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// JobHandler maneja las peticiones HTTP para órdenes de trabajo.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de trabajo
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Al menos una de car/appointment"
// @Success      201   {object}  dto.Envelope{data=dto.JobResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
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
// @Summary      Obtener orden por ID
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Envelope{data=dto.JobResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Listar órdenes de trabajo
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | in_progress | completed"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño"  default(10)
// @Success      200     {object}  dto.Envelope{data=[]dto.JobResponse}
// @Router       /api/jobs [get]
//
// Con rol customer el listado se restringe a las órdenes cuyos vehículos
// pertenecen al email del token.
func (h *JobHandler) List(c *fiber.Ctx) error {
	var pg dto.PageRequest
	if err := c.QueryParser(&pg); err != nil {
		return dto.NewValidationError("query", "parámetros inválidos")
	}
	pg.Normalize()
	items, total, err := h.uc.List(c.Context(), dto.ListJobsQuery{
		Page:   pg.Page,
		Limit:  pg.Limit,
		Status: c.Query("status"),
		Role:   GetRole(c),
		Email:  GetEmail(c),
	})
	if err != nil {
		return err
	}
	return respondPaged(c, items, pg.Page, pg.Limit, total)
}

// Update godoc
// @Summary      Actualizar orden de trabajo
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateJobRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.JobResponse}
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
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
// @Summary      Eliminar orden de trabajo
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respondMessage(c, "orden eliminada")
}
