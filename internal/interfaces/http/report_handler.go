package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/report"
)

// ReportHandler expone los reportes PDF por entidad.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Descargar reporte PDF por entidad
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        entity  path  string  true  "cars | jobs | appointments | inventory | mechanics | payments"
// @Success      200     {file}    file
// @Failure      404     {object}  dto.Envelope
// @Router       /api/reports/{entity} [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var fn func(context.Context) ([]byte, string, error)
	switch c.Params("entity") {
	case "cars":
		fn = h.uc.Cars
	case "jobs":
		fn = h.uc.Jobs
	case "appointments":
		fn = h.uc.Appointments
	case "inventory":
		fn = h.uc.Inventory
	case "mechanics":
		fn = h.uc.Mechanics
	case "payments":
		fn = h.uc.Payments
	default:
		return respondError(c, fiber.StatusNotFound, "reporte desconocido")
	}

	pdf, filename, err := fn(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
