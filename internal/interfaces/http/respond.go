package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
)

// Helpers del sobre uniforme. Toda respuesta JSON de la API sale por aquí o
// por el ErrorHandler central; los handlers nunca arman el sobre a mano.

// respondOK 200 con data.
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.Envelope{Success: true, Data: data})
}

// respondCreated 201 con data.
func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: data})
}

// respondMessage 200 sin data, solo mensaje.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.Envelope{Success: true, Message: message})
}

// respondPaged 200 con data + metadatos de paginación. El total viaja como
// puntero para que cero también se serialice.
func respondPaged(c *fiber.Ctx, data interface{}, page, limit int, total int64) error {
	return c.JSON(dto.Envelope{
		Success: true,
		Data:    data,
		Page:    page,
		Limit:   limit,
		Total:   &total,
	})
}

// respondError sobre de error con status explícito (para los middlewares que
// responden antes de llegar al ErrorHandler).
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}
