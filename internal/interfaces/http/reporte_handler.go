package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
)

// ReporteHandler expone la generación de reportes descargables (protegido).
// Cada endpoint responde el documento binario con sus cabeceras de descarga.
type ReporteHandler struct {
	uc *reporte.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporte.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Ventas genera el reporte de ventas del período.
func (h *ReporteHandler) Ventas(c *fiber.Ctx) error {
	return h.generar(c, h.uc.GenerarVentas)
}

// Compras genera el reporte de compras y proveedores del período.
func (h *ReporteHandler) Compras(c *fiber.Ctx) error {
	return h.generar(c, h.uc.GenerarCompras)
}

// IngresosEgresos genera el estado de resultados simple del período.
func (h *ReporteHandler) IngresosEgresos(c *fiber.Ctx) error {
	return h.generar(c, h.uc.GenerarIngresosEgresos)
}

// Inventario genera el reporte de inventario y rotación.
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	return h.generar(c, h.uc.GenerarInventario)
}

type generadorReporte func(ctx context.Context, negocioID string, req dto.ReporteRequest) (*dto.ReporteGeneradoDTO, error)

func (h *ReporteHandler) generar(c *fiber.Ctx, fn generadorReporte) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var req dto.ReporteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(c.Context(), negocioID, req)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Contenido)
}
