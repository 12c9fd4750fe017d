package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// EgresoHandler maneja las peticiones HTTP para Egreso (protegido).
type EgresoHandler struct {
	uc *usecase.EgresoUseCase
}

// NewEgresoHandler construye el handler.
func NewEgresoHandler(uc *usecase.EgresoUseCase) *EgresoHandler {
	return &EgresoHandler{uc: uc}
}

// Create registra un egreso manual.
func (h *EgresoHandler) Create(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateEgresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista egresos; fecha_desde y fecha_hasta acotan el rango.
func (h *EgresoHandler) List(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	desde, hasta, err := parseRango(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), negocioID, desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un egreso del negocio.
func (h *EgresoHandler) Delete(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
