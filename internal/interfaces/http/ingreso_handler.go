package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// IngresoHandler maneja las peticiones HTTP para Ingreso (protegido).
type IngresoHandler struct {
	uc *usecase.IngresoUseCase
}

// NewIngresoHandler construye el handler.
func NewIngresoHandler(uc *usecase.IngresoUseCase) *IngresoHandler {
	return &IngresoHandler{uc: uc}
}

// Create registra un ingreso manual.
func (h *IngresoHandler) Create(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista ingresos; fecha_desde y fecha_hasta acotan el rango.
func (h *IngresoHandler) List(c *fiber.Ctx) error {
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

// Delete elimina un ingreso del negocio.
func (h *IngresoHandler) Delete(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
