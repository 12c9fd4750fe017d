package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

const localLogger = "logger"

// conLogger deja el logger en el contexto de la petición para que
// responderError pueda registrar los fallos del backend antes del 500.
func conLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localLogger, log)
		return c.Next()
	}
}

// responderError traduce errores de dominio a respuestas HTTP. Los errores no
// reconocidos se responden con un mensaje genérico para no filtrar detalles
// internos.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: domain.ErrEmailAlreadyExists.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrPeriodoInvalido),
		errors.Is(err, domain.ErrFormatoNoSoportado),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		// El detalle (incluida la etiqueta que pone cada usecase al envolver
		// el error) solo va al log, nunca a la respuesta.
		if log, ok := c.Locals(localLogger).(*logger.Logger); ok && log != nil {
			log.Error().Err(err).Str("metodo", c.Method()).Str("ruta", c.Path()).Msg("error interno")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// requerirNegocio devuelve el negocio del token o corta con 401.
func requerirNegocio(c *fiber.Ctx) (string, error) {
	negocioID := GetNegocioID(c)
	if negocioID == "" {
		return "", c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "negocio_id requerido"})
	}
	return negocioID, nil
}
