package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

// NewErrorHandler construye el ErrorHandler central de Fiber: los handlers
// devuelven errores de dominio y aquí se traducen a status + sobre uniforme.
// En producción los errores no clasificados no filtran detalle interno.
func NewErrorHandler(log *logger.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Validación con detalle por campo.
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				Success: false,
				Message: "validación fallida",
				Errors:  vErr.Fields,
			})
		}

		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			return respondError(c, fiber.StatusUnauthorized, "credenciales inválidas")
		case errors.Is(err, domain.ErrInvalidResetCode):
			return respondError(c, fiber.StatusUnauthorized, "código inválido o expirado")
		case errors.Is(err, domain.ErrForbidden):
			return respondError(c, fiber.StatusForbidden, "permisos insuficientes")
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
			return respondError(c, fiber.StatusNotFound, "recurso no encontrado")
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return respondError(c, fiber.StatusConflict, "el email ya está registrado")
		case errors.Is(err, domain.ErrInsufficientStock):
			return respondError(c, fiber.StatusConflict, "stock insuficiente")
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
			return respondError(c, fiber.StatusConflict, "conflicto con un recurso existente")
		}

		// Errores propios de Fiber (404 de ruta, body demasiado grande, etc.).
		var fErr *fiber.Error
		if errors.As(err, &fErr) {
			return respondError(c, fErr.Code, fErr.Message)
		}

		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no clasificado")
		msg := "error interno"
		if !production {
			msg = err.Error()
		}
		return respondError(c, fiber.StatusInternalServerError, msg)
	}
}
