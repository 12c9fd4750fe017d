package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// CompraHandler maneja las peticiones HTTP para Compra (protegido).
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Create registra una compra con sus líneas de detalle. El aumento
// de stock y la inserción de la compra ocurren en una sola transacción.
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una compra con sus detalles.
func (h *CompraHandler) GetByID(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(negocioID, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List lista compras; fecha_desde y fecha_hasta acotan el rango.
func (h *CompraHandler) List(c *fiber.Ctx) error {
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

// Delete elimina una compra y sus detalles.
func (h *CompraHandler) Delete(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
