package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
)

// MovimientoHandler expone el historial unificado de movimientos (protegido).
type MovimientoHandler struct {
	uc *movimiento.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *movimiento.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// List devuelve los movimientos del negocio con su resumen agregado.
// Filtros por query string: tipo, fecha_desde, fecha_hasta, texto.
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var req dto.MovimientoFiltroRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.GetMovimientos(c.Context(), negocioID, req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
